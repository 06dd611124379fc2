package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand closes an order without delivery, as either Rejected
// (delivery refused) or Cancelled (order withdrawn).
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	target  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command to close an order.
// Target must be Rejected or Cancelled.
func NewDeclineOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	target order.Status,
	reason string,
) (DeclineOrderCommand, error) {
	cmd := DeclineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTarget(target),
	); err != nil {
		return DeclineOrderCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user closing the order.
func (c DeclineOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Target returns the terminal status to close the order as.
func (c DeclineOrderCommand) Target() order.Status {
	return c.target
}

// Reason returns why the order was closed.
func (c DeclineOrderCommand) Reason() string {
	return c.reason
}

func (c *DeclineOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeclineOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeclineOrderCommand) setTarget(target order.Status) error {
	if target != order.Rejected && target != order.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"decline target is invalid",
			fmt.Errorf("%s is neither Rejected nor Cancelled", target.String()),
		)
	}
	c.target = target
	return nil
}
