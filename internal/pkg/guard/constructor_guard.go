// Package guard holds the ConstructorGuard marker embedded by value objects, entities
// and commands that must only be built through their New* constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the caller
// did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes a value produced by its constructor from a zero value.
// Embed it as a private field and call Validate from the owner's Validate method:
//
//	type ShipmentID struct {
//	    id    uuid.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (s ShipmentID) Validate() error {
//	    return s.guard.Validate(ErrShipmentIDIsNotConstructed)
//	}
//
// The guard is a plain bool, so copies are safe to share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
