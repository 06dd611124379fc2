package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents completing a delivery: the assigned worker
// (or an admin) hands the order to the customer.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    kernel.Actor
	notes    string
	location string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order delivered.
// Notes and location are optional audit details for the ledger entry.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	notes string,
	location string,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.notes = notes
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user completing the delivery.
func (c DeliverOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Notes returns optional free-form notes for the audit entry.
func (c DeliverOrderCommand) Notes() string {
	return c.notes
}

// Location returns where the handoff happened, if recorded.
func (c DeliverOrderCommand) Location() string {
	return c.location
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
