// Package guard provides ConstructorGuard, a marker that distinguishes values built
// through their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects. Its zero value
// fails validation, so a struct literal that skipped the constructor is rejected before use.
//
// Example:
//
//	type AssignTruckCommand struct {
//	    legID   kernel.UUID
//	    truckID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AssignTruckCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignTruckCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
