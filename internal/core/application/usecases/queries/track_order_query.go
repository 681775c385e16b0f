package queries

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery fetches live tracking for an order.
type TrackOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID string) (TrackOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() string {
	return q.orderID
}
