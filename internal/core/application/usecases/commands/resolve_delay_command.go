package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrResolveDelayCommandIsNotConstructed = errors.New(
	"ResolveDelayCommand must be created via NewResolveDelayCommand constructor",
)

// ResolveDelayCommand reschedules a delayed order back into delivery
// with a new delivery date.
type ResolveDelayCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.Actor
	newDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewResolveDelayCommand creates a command to reschedule a delayed order.
func NewResolveDelayCommand(orderID kernel.UUID, actor kernel.Actor, newDeliveryDate time.Time) (ResolveDelayCommand, error) {
	cmd := ResolveDelayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setNewDeliveryDate(newDeliveryDate),
	); err != nil {
		return ResolveDelayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDelayCommand) Validate() error {
	return c.guard.Validate(ErrResolveDelayCommandIsNotConstructed)
}

// OrderID returns the order to reschedule.
func (c ResolveDelayCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the administrator rescheduling the order.
func (c ResolveDelayCommand) Actor() kernel.Actor {
	return c.actor
}

// NewDeliveryDate returns the rescheduled delivery date.
func (c ResolveDelayCommand) NewDeliveryDate() time.Time {
	return c.newDeliveryDate
}

func (c *ResolveDelayCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ResolveDelayCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ResolveDelayCommand) setNewDeliveryDate(newDeliveryDate time.Time) error {
	if newDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("newDeliveryDate")
	}
	c.newDeliveryDate = newDeliveryDate
	return nil
}
