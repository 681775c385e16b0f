package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks values that were built by their constructor, so a zero
// value struct can be told apart from a validated one.
//
// Commands and queries embed a guard and check it in Validate:
//
//	var ErrSyncStatusCommandIsNotConstructed = errors.New("SyncStatusCommand must be created via NewSyncStatusCommand")
//
//	type SyncStatusCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c SyncStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrSyncStatusCommandIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy or share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
