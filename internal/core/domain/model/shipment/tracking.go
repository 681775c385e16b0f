package shipment

import (
	"time"

	"dario.cat/mergo"
)

// Tracking is the carrier's view of a shipment as last reported.
// Dates are pointers so that an absent date is distinguishable from a zero one.
type Tracking struct {
	AWB                  string
	CourierName          string
	CurrentStatus        string
	CurrentLocation      string
	ShippedDate          *time.Time
	ExpectedDeliveryDate *time.Time
	Events               []TrackingEvent
}

// TrackingEvent is one scan in the carrier's history.
type TrackingEvent struct {
	Status   string
	Location string
	Activity string
	Date     *time.Time
}

// Clone returns a deep copy.
func (t Tracking) Clone() Tracking {
	out := t
	out.ShippedDate = cloneTime(t.ShippedDate)
	out.ExpectedDeliveryDate = cloneTime(t.ExpectedDeliveryDate)
	if t.Events != nil {
		out.Events = make([]TrackingEvent, len(t.Events))
		for i, e := range t.Events {
			e.Date = cloneTime(e.Date)
			out.Events[i] = e
		}
	}
	return out
}

// MergeTracking overlays update onto base. Fields present in update replace
// those in base; empty strings, nil dates and empty event lists leave base
// untouched. Neither argument is modified.
func MergeTracking(base, update Tracking) (Tracking, error) {
	merged := base.Clone()
	src := update.Clone()
	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return base, err
	}
	return merged, nil
}

// Status resolves CurrentStatus to a Status, or Unknown.
func (t Tracking) Status() Status {
	return resolveReportedStatus(t.CurrentStatus)
}

// DeliveryWindow is the expected arrival range. Earliest equals Latest when
// the carrier gave an exact date.
type DeliveryWindow struct {
	Earliest time.Time
	Latest   time.Time
}

const (
	minTransitDays = 3
	maxTransitDays = 5
)

// EstimatedDelivery returns the carrier's expected date when known, otherwise
// three to five days after shipping. It returns false when neither date is known.
func (t Tracking) EstimatedDelivery() (DeliveryWindow, bool) {
	if t.ExpectedDeliveryDate != nil {
		d := *t.ExpectedDeliveryDate
		return DeliveryWindow{Earliest: d, Latest: d}, true
	}
	if t.ShippedDate != nil {
		return DeliveryWindow{
			Earliest: t.ShippedDate.AddDate(0, 0, minTransitDays),
			Latest:   t.ShippedDate.AddDate(0, 0, maxTransitDays),
		}, true
	}
	return DeliveryWindow{}, false
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
