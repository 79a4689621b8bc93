// Package guard provides the constructor guard pattern used by domain objects
// to ensure they are only created through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through a constructor from
// zero values. Embedding a guard in a struct and setting it via
// NewConstructorGuard lets Validate detect bypassed construction.
//
// Example:
//
//	type Quantity struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(v int) (Quantity, error) {
//	    if v <= 0 {
//	        return Quantity{}, errors.New("quantity must be positive")
//	    }
//	    return Quantity{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was constructed through its
// constructor, otherwise the provided validationError (or
// ErrDefaultConstructorGuard if validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
