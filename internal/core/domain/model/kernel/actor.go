package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Role classifies who is acting on an order.
// The core never authenticates anyone; it receives an already-authenticated
// actor from the calling layer and only decides what that role may do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is platform staff with full authority over every order.
	RoleAdmin

	// RoleMerchant is the shop owner who creates orders.
	RoleMerchant

	// RoleDeliveryMan is a delivery worker who claims and delivers orders.
	RoleDeliveryMan
)

func getRoleNames() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		RoleAdmin:       "Admin",
		RoleMerchant:    "Merchant",
		RoleDeliveryMan: "DeliveryMan",
	}
}

// RoleFromString resolves a role by its name.
// Unrecognized names resolve to RoleUnknown, which fails validation.
func RoleFromString(name string) Role {
	for role, roleName := range getRoleNames() {
		if role != RoleUnknown && roleName == name {
			return role
		}
	}
	return RoleUnknown
}

// Validate checks if the Role value is one of the supported roles.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleMerchant && r != RoleDeliveryMan {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if name, ok := getRoleNames()[r]; ok {
		return name
	}
	return "Unknown"
}

// Actor identifies the already-authenticated user performing an operation.
// It is a value object: the calling layer constructs it from the session
// context and the core authorizes transitions against it.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from an authenticated user's identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor is platform staff.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks the actor carries a valid identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
