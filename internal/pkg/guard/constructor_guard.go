// Package guard provides a defensive construction marker for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only instances built through their constructor validate.
package guard

import "errors"

// ErrObjectIsNotConstructed is returned by Validate when no specific error is supplied
// and the object was not created through its constructor.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having passed through its constructor.
// The zero value fails validation, which prevents bypassing constructor
// invariants by direct struct initialization.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call this from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was properly constructed.
// If not, it returns notConstructedErr, or ErrObjectIsNotConstructed when nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrObjectIsNotConstructed
	}
	return notConstructedErr
}
