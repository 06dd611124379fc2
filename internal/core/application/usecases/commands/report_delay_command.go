package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrReportDelayCommandIsNotConstructed = errors.New(
	"ReportDelayCommand must be created via NewReportDelayCommand constructor",
)

// ReportDelayCommand flags an assigned order as delayed, pausing delivery
// until an administrator reschedules it.
type ReportDelayCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewReportDelayCommand creates a command to report a delivery delay.
// Reason is mandatory.
func NewReportDelayCommand(orderID kernel.UUID, actor kernel.Actor, reason string) (ReportDelayCommand, error) {
	cmd := ReportDelayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setReason(reason),
	); err != nil {
		return ReportDelayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDelayCommand) Validate() error {
	return c.guard.Validate(ErrReportDelayCommandIsNotConstructed)
}

// OrderID returns the delayed order.
func (c ReportDelayCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user reporting the delay.
func (c ReportDelayCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns why delivery is delayed.
func (c ReportDelayCommand) Reason() string {
	return c.reason
}

func (c *ReportDelayCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReportDelayCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ReportDelayCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
