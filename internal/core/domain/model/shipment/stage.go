package shipment

// Stage places a Status relative to the forward progression. It is one of
// Ordered, Special or Unrecognized; callers switch on the concrete type.
//
// Example:
//
//	switch st := status.Stage().(type) {
//	case Ordered:
//	    fmt.Println("step", st.Index)
//	case Special:
//	    fmt.Println("escape hatch", st.Kind)
//	case Unrecognized:
//	    fmt.Println("no position")
//	}
type Stage interface {
	isStage()
}

// Ordered is a position in the progression, 0 (Pending) through 4 (Delivered).
type Ordered struct {
	Index int
}

// Special is a status outside the progression.
type Special struct {
	Kind Status
}

// Unrecognized is a status with no defined position.
type Unrecognized struct{}

func (Ordered) isStage()      {}
func (Special) isStage()      {}
func (Unrecognized) isStage() {}

// Stage classifies s.
//
// Returns:
//   - Ordered for the five progression statuses, Delivered Early sharing
//     Delivered's index
//   - Special for Returning, Returned and Cancelled
//   - Unrecognized for Unknown and any out-of-range value
func (s Status) Stage() Stage {
	switch s {
	case Pending:
		return Ordered{Index: 0}
	case Processing:
		return Ordered{Index: 1}
	case Shipped:
		return Ordered{Index: 2}
	case OutForDelivery:
		return Ordered{Index: 3}
	case Delivered, DeliveredEarly:
		return Ordered{Index: 4}
	case Returning, Returned, Cancelled:
		return Special{Kind: s}
	default:
		return Unrecognized{}
	}
}

// ProgressionIndex returns the position of s in the progression and true,
// or 0 and false for special and unrecognized statuses.
//
// Example:
//
//	i, ok := OutForDelivery.ProgressionIndex() // 3, true
//	_, ok = Returned.ProgressionIndex()        // false
func (s Status) ProgressionIndex() (int, bool) {
	if o, ok := s.Stage().(Ordered); ok {
		return o.Index, true
	}
	return 0, false
}
