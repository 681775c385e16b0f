// Package queries contains read-only operations over the tracking backend and
// the local order mirror. Queries never write to the mirror.
package queries

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// OrderReader is the read side of the order mirror.
type OrderReader interface {
	Get(ctx context.Context, id string) (*shipment.Order, error)
	Find(ctx context.Context, filter shipment.ListFilter) ([]*shipment.Order, error)
}
