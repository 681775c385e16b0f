package shipment

import (
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
)

// Status is the shipment lifecycle state of an order.
//
// Ordered progression (forward only):
//
//	Pending ──> Processing ──> Shipped ──> Out for Delivery ──> Delivered
//	                                                        └─> Delivered Early
//
// Special statuses (reachable from any state):
//
//	Returning, Returned, Cancelled
//
// Delivered Early is an alias of Delivered and shares its position in the
// progression. The zero value Unknown marks a status that was never set or
// could not be recognized.
type Status int

const (
	// Unknown is an uninitialized or unrecognized status.
	// This value (0) helps catch statuses that were never set.
	Unknown Status = iota

	// Pending is the status of a paid order that has not been booked with a
	// carrier. New orders start here.
	Pending

	// Processing means the shipment is booked and waits for pickup.
	Processing

	// Shipped means the carrier has picked the parcel up.
	Shipped

	// OutForDelivery means the parcel is on the last mile.
	OutForDelivery

	// Delivered is the end of the progression.
	Delivered

	// DeliveredEarly is reported by some carriers instead of Delivered.
	DeliveredEarly

	// Returning, Returned and Cancelled sit outside the progression and can
	// be entered from any status.
	Returning
	Returned
	Cancelled
)

// statusNames holds the wire names used by the tracking backend and the admin UI.
var statusNames = map[Status]string{
	Pending:        "Pending",
	Processing:     "Processing",
	Shipped:        "Shipped",
	OutForDelivery: "Out for Delivery",
	Delivered:      "Delivered",
	DeliveredEarly: "Delivered Early",
	Returning:      "Returning",
	Returned:       "Returned",
	Cancelled:      "Cancelled",
}

// Progression returns the ordered forward statuses, Delivered Early excluded
// since it shares Delivered's position.
func Progression() []Status {
	return []Status{Pending, Processing, Shipped, OutForDelivery, Delivered}
}

// SpecialStatuses returns the statuses that sit outside the progression.
func SpecialStatuses() []Status {
	return []Status{Returning, Returned, Cancelled}
}

// AllStatuses returns every valid status in display order.
func AllStatuses() []Status {
	return []Status{
		Pending, Processing, Shipped, OutForDelivery, Delivered, DeliveredEarly,
		Returning, Returned, Cancelled,
	}
}

// ParseStatus converts a wire name into a Status. Matching ignores case and
// surrounding whitespace. An empty name is the default Pending status.
//
// Example:
//
//	s, err := ParseStatus("out for delivery") // OutForDelivery, nil
//	_, err = ParseStatus("Lost")               // value is invalid error
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Pending, nil
	}
	for s, n := range statusNames {
		if strings.EqualFold(n, trimmed) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a known shipment status", trimmed),
	)
}

// StatusFromName is the lenient form of ParseStatus used for data that has
// already been accepted elsewhere (backend payloads, persisted rows).
// Unrecognized names become Unknown instead of an error.
//
// Example:
//
//	StatusFromName("delivered early") // DeliveredEarly
//	StatusFromName("In Transit")      // Unknown; carrier wording goes through NormalizeCarrierStatus
func StatusFromName(name string) Status {
	s, err := ParseStatus(name)
	if err != nil {
		return Unknown
	}
	return s
}

// String returns the wire name, or "Unknown".
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Validate checks that s is one of the nine named statuses.
//
// Unknown (0) and any value outside the const block are invalid.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError naming the raw value otherwise
//
// Statuses restored from storage or decoded leniently may be Unknown; call
// Validate before using them as the target of a change.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", int(s)),
		)
	}
	return nil
}

// IsSpecial reports whether s sits outside the progression. Special statuses
// are always an allowed target, see ValidateTransition.
//
// Example:
//
//	Cancelled.IsSpecial() // true
//	Unknown.IsSpecial()   // false: unrecognized is not special
func (s Status) IsSpecial() bool {
	return s == Returning || s == Returned || s == Cancelled
}

// IsDelivered reports whether s is in the delivered family. Badges and the
// progress bar treat both members the same.
//
// Example:
//
//	DeliveredEarly.IsDelivered() // true
func (s Status) IsDelivered() bool {
	return s == Delivered || s == DeliveredEarly
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes leniently, see StatusFromName.
func (s *Status) UnmarshalText(text []byte) error {
	*s = StatusFromName(string(text))
	return nil
}
