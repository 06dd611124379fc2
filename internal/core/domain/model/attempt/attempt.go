// Package attempt contains the DeliveryAttempt record: one audited event in
// an order's operational history. The ledger of attempts is append-only:
// corrections append a new entry, never edit history. Attempt numbers
// are strictly increasing and gapless per order.
package attempt

import (
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Outcome is the closed set of delivery-attempt results.
type Outcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown Outcome = iota

	// Attempted records a delivery try without a final result.
	Attempted

	// Successful records a completed delivery.
	Successful

	// Failed records a failed delivery try.
	Failed

	// Refused records a refused or withdrawn order.
	Refused

	// CustomerNotAvailable records a try with nobody to receive the order.
	CustomerNotAvailable

	// WrongAddress records a try aborted over a bad address.
	WrongAddress

	// Other records administrative events and delay reports.
	Other
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown:       "Unknown",
		Attempted:            "ATTEMPTED",
		Successful:           "SUCCESSFUL",
		Failed:               "FAILED",
		Refused:              "REFUSED",
		CustomerNotAvailable: "CUSTOMER_NOT_AVAILABLE",
		WrongAddress:         "WRONG_ADDRESS",
		Other:                "OTHER",
	}
}

// OutcomeFromString resolves an outcome by its wire name.
// Unrecognized names resolve to OutcomeUnknown, which fails validation.
func OutcomeFromString(name string) Outcome {
	for outcome, outcomeName := range getOutcomeStrings() {
		if outcome != OutcomeUnknown && outcomeName == name {
			return outcome
		}
	}
	return OutcomeUnknown
}

// Validate checks if the Outcome is one of the defined outcomes.
func (o Outcome) Validate() error {
	if o < Attempted || o > Other {
		return errs.NewValueIsInvalidErrorWithCause("outcome is invalid", fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// AcceptanceReason is the audit reason recorded when platform staff accept
// an order ("order accepted by the administration").
const AcceptanceReason = "قبول الطلب من قبل الإدارة"

// Attempt is one immutable entry in an order's delivery-attempt ledger.
//
// Number is 1-based and strictly increasing per order; the repository
// computes it atomically with the insert. DeliveryManID is nil for
// administrative entries not authored by a worker.
type Attempt struct {
	id            kernel.UUID
	orderID       kernel.UUID
	number        int
	outcome       Outcome
	deliveryManID *kernel.UUID
	reason        string
	notes         string
	location      string
	attemptedAt   time.Time

	isConstructed bool
}

// NewAttempt creates a ledger entry pending its attempt number: the number
// is assigned by the repository within the same atomic unit as the insert,
// so concurrent writers on one order cannot collide.
func NewAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	outcome Outcome,
	deliveryManID *kernel.UUID,
	reason string,
	notes string,
	location string,
	attemptedAt time.Time,
) (*Attempt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order ID", err)
	}
	if err := outcome.Validate(); err != nil {
		return nil, err
	}
	if deliveryManID != nil {
		if err := deliveryManID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Attempt{
		id:            id,
		orderID:       orderID,
		outcome:       outcome,
		deliveryManID: deliveryManID,
		reason:        reason,
		notes:         notes,
		location:      location,
		attemptedAt:   attemptedAt,
		isConstructed: true,
	}, nil
}

// RestoreAttempt reconstructs a ledger entry from persistence,
// including its assigned number.
func RestoreAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	number int,
	outcome Outcome,
	deliveryManID *kernel.UUID,
	reason string,
	notes string,
	location string,
	attemptedAt time.Time,
) (*Attempt, error) {
	restored, err := NewAttempt(id, orderID, outcome, deliveryManID, reason, notes, location, attemptedAt)
	if err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"attempt number is invalid",
			fmt.Errorf("%d is not greater than 0", number),
		)
	}

	restored.number = number
	return restored, nil
}

// Validate ensures the Attempt was created through a constructor.
func (a *Attempt) Validate() error {
	if a == nil || !a.isConstructed {
		return errs.NewValueIsRequiredError("Attempt must be created via NewAttempt or RestoreAttempt")
	}
	return nil
}

// ID returns the entry's unique identifier.
func (a *Attempt) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this entry belongs to.
func (a *Attempt) OrderID() kernel.UUID {
	return a.orderID
}

// Number returns the 1-based attempt number, or 0 before persistence.
func (a *Attempt) Number() int {
	return a.number
}

// Outcome returns the recorded outcome.
func (a *Attempt) Outcome() Outcome {
	return a.outcome
}

// DeliveryMan returns the authoring worker's ID, or nil for
// administrative entries.
func (a *Attempt) DeliveryMan() *kernel.UUID {
	return a.deliveryManID
}

// Reason returns the recorded reason, if any.
func (a *Attempt) Reason() string {
	return a.reason
}

// Notes returns free-form notes recorded with the entry.
func (a *Attempt) Notes() string {
	return a.notes
}

// Location returns where the attempt took place, if recorded.
func (a *Attempt) Location() string {
	return a.location
}

// AttemptedAt returns when the event happened.
func (a *Attempt) AttemptedAt() time.Time {
	return a.attemptedAt
}
