package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single central transition table so
// call sites never re-validate transitions ad hoc.
//
// State transitions:
//
//	Pending ──> Accepted ──> AssignedToDelivery ──> Delivered
//	   │            │          │    ▲       │ │
//	   └────────────┴──────────┤    │       │ └──> Rejected
//	                Cancelled <┘    └── Reported
//
// Delivered, Rejected and Cancelled are terminal. Reported is a side-track
// for delay/problem reports and resolves back into AssignedToDelivery.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a merchant creates an order.
	Pending

	// Accepted indicates platform staff approved the order for delivery.
	Accepted

	// AssignedToDelivery indicates a delivery worker has claimed the order.
	AssignedToDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Rejected indicates the delivery was refused. Terminal.
	Rejected

	// Cancelled indicates the order was withdrawn before delivery. Terminal.
	Cancelled

	// Reported indicates the assigned worker flagged a delay or problem.
	// Resolves back into AssignedToDelivery with a new delivery date.
	Reported
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "Unknown",
		Pending:            "Pending",
		Accepted:           "Accepted",
		AssignedToDelivery: "AssignedToDelivery",
		Delivered:          "Delivered",
		Rejected:           "Rejected",
		Cancelled:          "Cancelled",
		Reported:           "Reported",
	}
}

// allowedSuccessors is the single source of truth for legal transitions.
func allowedSuccessors() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending:            {Accepted: true, Cancelled: true},
		Accepted:           {AssignedToDelivery: true, Cancelled: true},
		AssignedToDelivery: {Delivered: true, Rejected: true, Cancelled: true, Reported: true},
		Reported:           {AssignedToDelivery: true},
		Delivered:          {},
		Rejected:           {},
		Cancelled:          {},
	}
}

// StatusFromString resolves a status by its name.
// Unrecognized names resolve to StatusUnknown, which fails validation.
func StatusFromString(name string) Status {
	for status, statusName := range getStatusStrings() {
		if status != StatusUnknown && statusName == name {
			return status
		}
	}
	return StatusUnknown
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := allowedSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	successors, ok := allowedSuccessors()[s]
	return ok && len(successors) == 0
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	successors, ok := allowedSuccessors()[s]
	return ok && successors[target]
}

// TransitionTo validates the move from s to target against the transition
// table and returns the new status.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) if target is not a legal successor of s
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s is not a legal successor of %s", target.String(), s.String()),
		)
	}
	return target, nil
}
