package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoItems is returned when an order is created without any line items.
	ErrNoItems = errors.New("order must have at least one item")
)

// Order is the aggregate root for a delivery order. It owns the order's
// lifecycle from merchant creation through assignment and delivery attempts
// to final settlement, and is the only place status transitions happen.
//
// Invariants:
//   - Created once by a merchant; never physically deleted (audit requirement)
//   - Items are immutable after creation
//   - Status changes only through the transition methods, which check both
//     the transition table and the actor's authority
//   - Enters Delivered at most once; deliveredAt is stamped on that transition
//   - merchantEarning is totalPrice minus merchantBaseFee for COD orders and
//     the negated merchantBaseFee for prepaid orders (the platform already
//     holds the sale)
type Order struct {
	id            kernel.UUID
	code          string
	codeSequence  int
	status        Status
	paymentMethod PaymentMethod
	city          kernel.City
	merchantID    kernel.UUID
	deliveryManID *kernel.UUID
	items         []Item

	originalTotalPrice decimal.Decimal
	totalDiscount      decimal.Decimal
	totalPrice         decimal.Decimal
	merchantEarning    decimal.Decimal

	createdAt            time.Time
	deliveredAt          *time.Time
	deliveryDate         *time.Time
	previousDeliveryDate *time.Time
	delayReason          string

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a valid order from a merchant request.
//
// The code sequence is the per-city sequence number already reserved by the
// caller's transaction; the human-readable code is derived from it. Totals
// come from the pricing engine and are stored, not recomputed downstream.
// merchantEarning is derived from the payment method and the merchant's base
// fee at creation time so settlement later only applies stored values.
func NewOrder(
	id kernel.UUID,
	city kernel.City,
	codeSequence int,
	merchantID kernel.UUID,
	paymentMethod PaymentMethod,
	items []Item,
	originalTotalPrice decimal.Decimal,
	totalDiscount decimal.Decimal,
	totalPrice decimal.Decimal,
	merchantBaseFee decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		city.Validate(),
		validateMerchantID(merchantID),
		paymentMethod.Validate(),
		validateItems(items),
		validateMoney("original total price", originalTotalPrice),
		validateMoney("total discount", totalDiscount),
		validateMoney("total price", totalPrice),
		validateMoney("merchant base fee", merchantBaseFee),
	); err != nil {
		return nil, err
	}

	code, err := CodeFor(city, codeSequence)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		code:               code,
		codeSequence:       codeSequence,
		status:             Pending,
		paymentMethod:      paymentMethod,
		city:               city,
		merchantID:         merchantID,
		items:              items,
		originalTotalPrice: originalTotalPrice,
		totalDiscount:      totalDiscount,
		totalPrice:         totalPrice,
		merchantEarning:    merchantEarningFor(paymentMethod, totalPrice, merchantBaseFee),
		createdAt:          createdAt,
		isConstructed:      true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules. Used only by repositories.
func RestoreOrder(
	id kernel.UUID,
	code string,
	codeSequence int,
	status Status,
	paymentMethod PaymentMethod,
	city kernel.City,
	merchantID kernel.UUID,
	deliveryManID *kernel.UUID,
	items []Item,
	originalTotalPrice decimal.Decimal,
	totalDiscount decimal.Decimal,
	totalPrice decimal.Decimal,
	merchantEarning decimal.Decimal,
	createdAt time.Time,
	deliveredAt *time.Time,
	deliveryDate *time.Time,
	previousDeliveryDate *time.Time,
	delayReason string,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		status.Validate(),
		paymentMethod.Validate(),
		city.Validate(),
		validateMerchantID(merchantID),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                   id,
		code:                 code,
		codeSequence:         codeSequence,
		status:               status,
		paymentMethod:        paymentMethod,
		city:                 city,
		merchantID:           merchantID,
		deliveryManID:        deliveryManID,
		items:                items,
		originalTotalPrice:   originalTotalPrice,
		totalDiscount:        totalDiscount,
		totalPrice:           totalPrice,
		merchantEarning:      merchantEarning,
		createdAt:            createdAt,
		deliveredAt:          deliveredAt,
		deliveryDate:         deliveryDate,
		previousDeliveryDate: previousDeliveryDate,
		delayReason:          delayReason,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable, city-scoped order code.
func (o *Order) Code() string {
	return o.code
}

// CodeSequence returns the per-city sequence number backing the code.
func (o *Order) CodeSequence() int {
	return o.codeSequence
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how this order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// City returns the delivery city.
func (o *Order) City() kernel.City {
	return o.city
}

// MerchantID returns the owning merchant.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// DeliveryMan returns the assigned delivery worker's ID, or nil if unassigned.
func (o *Order) DeliveryMan() *kernel.UUID {
	return o.deliveryManID
}

// Items returns the order lines. The returned slice must not be mutated.
func (o *Order) Items() []Item {
	return o.items
}

// OriginalTotalPrice returns the pre-discount total over non-free items.
func (o *Order) OriginalTotalPrice() decimal.Decimal {
	return o.originalTotalPrice
}

// TotalDiscount returns the discount applied at creation.
func (o *Order) TotalDiscount() decimal.Decimal {
	return o.totalDiscount
}

// TotalPrice returns the final total after discount.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// MerchantEarning returns the net amount attributable to the merchant.
// Negative for prepaid orders: the merchant owes the platform its fee.
func (o *Order) MerchantEarning() decimal.Decimal {
	return o.merchantEarning
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// DeliveryDate returns the currently planned delivery date, if any.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// PreviousDeliveryDate returns the delivery date replaced by the last
// delay resolution, preserved for audit.
func (o *Order) PreviousDeliveryDate() *time.Time {
	return o.previousDeliveryDate
}

// DelayReason returns the reason given with the last delay report.
func (o *Order) DelayReason() string {
	return o.delayReason
}

// IsAssignedTo reports whether the given user is the assigned delivery worker.
func (o *Order) IsAssignedTo(userID kernel.UUID) bool {
	return o.deliveryManID != nil && o.deliveryManID.IsEqual(userID)
}

// Accept moves a pending order into Accepted. Platform staff only.
func (o *Order) Accept(actor kernel.Actor) error {
	newStatus, err := o.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewNotAuthorizedError("accept order", "only admins accept orders")
	}

	o.status = newStatus
	return nil
}

// Assign moves an accepted order into AssignedToDelivery and records the
// delivery worker.
//
// Authority: an admin may assign any worker; a delivery worker may only
// claim the order for themself. The worker's city must match the order's
// city unless the actor is an admin (the admin override covers cross-city
// arrangements).
//
// The aggregate-level unassigned check is advisory; the repository's
// conditional update is what actually resolves two concurrent claims,
// handing the loser a conflict error.
func (o *Order) Assign(actor kernel.Actor, deliveryManID kernel.UUID, workerCity kernel.City) error {
	if err := deliveryManID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(AssignedToDelivery)
	if err != nil {
		return err
	}

	switch {
	case actor.IsAdmin():
	case actor.Role() == kernel.RoleDeliveryMan && actor.ID().IsEqual(deliveryManID):
		if workerCity != o.city {
			return errs.NewNotAuthorizedError(
				"assign order",
				fmt.Sprintf("delivery worker city %s does not match order city %s", workerCity, o.city),
			)
		}
	default:
		return errs.NewNotAuthorizedError("assign order", "only admins or the claiming delivery worker may assign")
	}

	if o.deliveryManID != nil {
		return errs.NewConflictError("order", "already assigned to a delivery worker")
	}

	o.status = newStatus
	o.deliveryManID = &deliveryManID
	return nil
}

// MarkDelivered moves an assigned order into Delivered and stamps deliveredAt.
// Only the assigned delivery worker or an admin may complete a delivery.
//
// The caller is responsible for running inventory and settlement side effects
// in the same unit of work before committing; this method only performs the
// status change, which the transition table guarantees can happen once.
func (o *Order) MarkDelivered(actor kernel.Actor, deliveredAt time.Time) error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !o.IsAssignedTo(actor.ID()) {
		return errs.NewNotAuthorizedError("deliver order", "only the assigned delivery worker or an admin may deliver")
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

// Decline closes the order as Rejected or Cancelled.
//
// Rejected records a refused delivery and is only reachable from
// AssignedToDelivery. Cancelled withdraws the order: the owning merchant may
// cancel while still Pending, the assigned worker from AssignedToDelivery,
// and an admin from any non-terminal pre-delivery state.
func (o *Order) Decline(actor kernel.Actor, target Status) error {
	if target != Rejected && target != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"decline target is invalid",
			fmt.Errorf("%s is neither Rejected nor Cancelled", target.String()),
		)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	switch {
	case actor.IsAdmin():
	case target == Cancelled && o.status == Pending &&
		actor.Role() == kernel.RoleMerchant && actor.ID().IsEqual(o.merchantID):
	case o.status == AssignedToDelivery && o.IsAssignedTo(actor.ID()):
	default:
		return errs.NewNotAuthorizedError("decline order", "actor may not close this order")
	}

	o.status = newStatus
	return nil
}

// ReportDelay moves an assigned order onto the Reported side-track with the
// worker's reason. Only the assigned delivery worker or an admin may report.
func (o *Order) ReportDelay(actor kernel.Actor, reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("delay reason")
	}

	newStatus, err := o.status.TransitionTo(Reported)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !o.IsAssignedTo(actor.ID()) {
		return errs.NewNotAuthorizedError("report delay", "only the assigned delivery worker or an admin may report")
	}

	o.status = newStatus
	o.delayReason = reason
	return nil
}

// ResolveDelay returns a reported order to AssignedToDelivery with a new
// delivery date. The replaced date and the delay reason stay on the order
// for audit. Platform staff only.
func (o *Order) ResolveDelay(actor kernel.Actor, newDeliveryDate time.Time) error {
	newStatus, err := o.status.TransitionTo(AssignedToDelivery)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewNotAuthorizedError("resolve delay", "only admins resolve delay reports")
	}

	o.status = newStatus
	o.previousDeliveryDate = o.deliveryDate
	o.deliveryDate = &newDeliveryDate
	return nil
}

func merchantEarningFor(method PaymentMethod, totalPrice, merchantBaseFee decimal.Decimal) decimal.Decimal {
	if method == Prepaid {
		return merchantBaseFee.Neg()
	}
	return totalPrice.Sub(merchantBaseFee)
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}

func validateMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant ID", err)
	}
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateMoney(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", value))
	}
	return nil
}
