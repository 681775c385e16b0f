package ports

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// OrderRepository is the persistence contract for the local order mirror.
// Records are superseded, never deleted.
type OrderRepository interface {
	// Add persists a new order. Fails if the id already exists.
	Add(ctx context.Context, aggregate *shipment.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *shipment.Order) error

	// Save adds or updates, used when mirroring orders first seen remotely.
	Save(ctx context.Context, aggregate *shipment.Order) error

	// Get returns the order or an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*shipment.Order, error)

	// Find returns orders matching filter, ordered by id.
	Find(ctx context.Context, filter shipment.ListFilter) ([]*shipment.Order, error)

	// GetAllInTransit returns orders linked to a shipment whose status is not
	// final (delivered, returned, cancelled). Used by the reconciliation sweep.
	GetAllInTransit(ctx context.Context) ([]*shipment.Order, error)
}
