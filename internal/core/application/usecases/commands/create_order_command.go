package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/discount"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNoItemsSelected = errors.New("at least one item must be selected")
)

// ItemSelection is one requested order line: which product, how many units,
// and whether the line is a promotional give-away. Prices are not part of
// the selection; the handler reads them from the catalog.
type ItemSelection struct {
	productID kernel.UUID
	quantity  int
	isFree    bool
}

// NewItemSelection creates a validated item selection.
func NewItemSelection(productID kernel.UUID, quantity int, isFree bool) (ItemSelection, error) {
	if err := productID.Validate(); err != nil {
		return ItemSelection{}, err
	}
	if quantity <= 0 {
		return ItemSelection{}, errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	return ItemSelection{productID: productID, quantity: quantity, isFree: isFree}, nil
}

// ProductID returns the selected product.
func (s ItemSelection) ProductID() kernel.UUID {
	return s.productID
}

// Quantity returns the selected unit count.
func (s ItemSelection) Quantity() int {
	return s.quantity
}

// IsFree reports whether the line is a promotional give-away.
func (s ItemSelection) IsFree() bool {
	return s.isFree
}

// CreateOrderCommand represents a merchant's request to create a new order.
// A merchant may only create orders for themself; an admin may create an
// order on any merchant's behalf.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         kernel.Actor
	merchantID    kernel.UUID
	city          kernel.City
	paymentMethod order.PaymentMethod
	items         []ItemSelection
	discountRule  *discount.Rule

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// The discount rule is optional; everything else is required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	merchantID kernel.UUID,
	city kernel.City,
	paymentMethod order.PaymentMethod,
	items []ItemSelection,
	discountRule *discount.Rule,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor, merchantID),
		cmd.setCity(city),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
		cmd.setDiscountRule(discountRule),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user creating the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// MerchantID returns the merchant the order belongs to.
func (c CreateOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// City returns the delivery city.
func (c CreateOrderCommand) City() kernel.City {
	return c.city
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemSelection {
	return c.items
}

// DiscountRule returns the optional discount rule.
func (c CreateOrderCommand) DiscountRule() *discount.Rule {
	return c.discountRule
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor, merchantID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := merchantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant ID", err)
	}

	switch actor.Role() {
	case kernel.RoleAdmin:
	case kernel.RoleMerchant:
		if !actor.ID().IsEqual(merchantID) {
			return errs.NewNotAuthorizedError("create order", "merchants only create their own orders")
		}
	default:
		return errs.NewNotAuthorizedError("create order", "only merchants or admins create orders")
	}

	c.actor = actor
	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSelection) error {
	if len(items) == 0 {
		return ErrNoItemsSelected
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDiscountRule(rule *discount.Rule) error {
	if rule != nil {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	c.discountRule = rule
	return nil
}
