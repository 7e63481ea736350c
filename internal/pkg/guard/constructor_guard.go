// Package guard provides the ConstructorGuard defensive pattern that ensures
// value objects, entities, commands, and queries are only created through their
// designated constructor functions. Zero-value instances fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and initialize it with NewConstructorGuard inside the
// constructor; Validate then rejects any instance that bypassed the constructor.
//
// Example:
//
//	type TrackingCode struct {
//	    value string
//	    guard ConstructorGuard
//	}
//
//	func NewTrackingCode(v string) (TrackingCode, error) {
//	    if v == "" {
//	        return TrackingCode{}, errors.New("value is required")
//	    }
//	    return TrackingCode{value: v, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c TrackingCode) Validate() error {
//	    return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value instances it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
