// Package guard provides a defensive construction check for value objects
// and commands. Embedding a ConstructorGuard lets Validate distinguish an
// instance built through its constructor from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard holds an internal flag that is only set
// when the object is created through the constructor; a zero-value struct
// fails validation.
//
// Example usage:
//
//	var ErrPatchNotConstructed = errors.New("Patch must be created via NewPatch")
//
//	type Patch struct {
//	    fields map[string]any
//	    guard  guard.ConstructorGuard
//	}
//
//	func (p Patch) Validate() error {
//	    return p.guard.Validate(ErrPatchNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects and commands.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, the provided error for
// zero values, or ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
