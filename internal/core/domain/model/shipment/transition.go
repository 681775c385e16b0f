package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
)

// ErrTransitionNotAllowed is the sentinel behind every TransitionError.
var ErrTransitionNotAllowed = errors.New("shipment status transition is not allowed")

// Policy decides what happens when the current status has no position in the
// progression (it is special or unrecognized).
type Policy int

const (
	// PermissiveFromUnordered lets a special or unrecognized status move to any
	// status, including back into the progression. This is the storefront's
	// historical behaviour and the default.
	PermissiveFromUnordered Policy = iota

	// StrictFromUnordered only lets a special or unrecognized status move to
	// another special status.
	StrictFromUnordered
)

// ParsePolicy accepts "permissive" (or empty) and "strict", ignoring case.
//
// Returns:
//   - the matching Policy and nil
//   - PermissiveFromUnordered and ValueIsInvalidError for any other name
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "permissive":
		return PermissiveFromUnordered, nil
	case "strict":
		return StrictFromUnordered, nil
	default:
		return PermissiveFromUnordered, errs.NewValueIsInvalidErrorWithCause(
			"transition policy",
			fmt.Errorf("%q is not one of permissive, strict", name),
		)
	}
}

func (p Policy) String() string {
	if p == StrictFromUnordered {
		return "strict"
	}
	return "permissive"
}

// TransitionError is a rejected status change. It names both statuses.
//
// It matches ErrTransitionNotAllowed with errors.Is. The HTTP adapter maps it
// to 409 and shows UserMessage to the operator.
//
// Example:
//
//	err := ValidateTransition(Delivered, Shipped, PermissiveFromUnordered)
//	var te *TransitionError
//	if errors.As(err, &te) {
//	    te.Error()       // "cannot move from Delivered back to Shipped"
//	    te.UserMessage() // "Cannot change shipment status from 'Delivered' to 'Shipped'. ..."
//	}
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	if _, ok := e.From.ProgressionIndex(); ok {
		return fmt.Sprintf("cannot move from %s back to %s", e.From, e.To)
	}
	return fmt.Sprintf("cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrTransitionNotAllowed
}

// UserMessage is the text shown in the admin status dialog.
func (e *TransitionError) UserMessage() string {
	return fmt.Sprintf(
		"Cannot change shipment status from '%s' to '%s'. Status can only move forward in the shipping process.",
		e.From, e.To,
	)
}

// ValidateTransition decides whether current may change to proposed.
//
// Rules:
//   - proposed must be a valid status
//   - a special proposed status is always allowed
//   - between two ordered statuses, proposed must be at or after current
//   - from a special or unrecognized current status, the policy decides
//
// Staying on the same status is allowed.
//
// Returns:
//   - nil if the transition is allowed
//   - *TransitionError if the ordering rule rejects it
//   - ValueIsInvalidError if proposed is not a valid status
//
// Example:
//
//	ValidateTransition(Shipped, Delivered, PermissiveFromUnordered)  // nil
//	ValidateTransition(Delivered, Returning, StrictFromUnordered)    // nil: special target
//	ValidateTransition(Cancelled, Shipped, StrictFromUnordered)      // *TransitionError
//	ValidateTransition(Cancelled, Shipped, PermissiveFromUnordered)  // nil
func ValidateTransition(current, proposed Status, policy Policy) error {
	if err := proposed.Validate(); err != nil {
		return err
	}

	to := proposed.Stage()
	if _, ok := to.(Special); ok {
		return nil
	}
	toOrdered := to.(Ordered)

	switch from := current.Stage().(type) {
	case Ordered:
		if toOrdered.Index < from.Index {
			return &TransitionError{From: current, To: proposed}
		}
		return nil
	default:
		if policy == StrictFromUnordered {
			return &TransitionError{From: current, To: proposed}
		}
		return nil
	}
}

// IsValidTransition is ValidateTransition under the permissive policy,
// reduced to a bool.
func IsValidTransition(current, proposed Status) bool {
	return ValidateTransition(current, proposed, PermissiveFromUnordered) == nil
}

// AllowedTargets lists the statuses current may change to, in display order,
// excluding current itself. It feeds the status picker, so every entry passes
// ValidateTransition under the same policy.
//
// Example:
//
//	AllowedTargets(OutForDelivery, PermissiveFromUnordered)
//	// [Delivered Delivered Early Returning Returned Cancelled]
func AllowedTargets(current Status, policy Policy) []Status {
	targets := make([]Status, 0, len(statusNames))
	for _, s := range AllStatuses() {
		if s == current {
			continue
		}
		if ValidateTransition(current, s, policy) == nil {
			targets = append(targets, s)
		}
	}
	return targets
}
