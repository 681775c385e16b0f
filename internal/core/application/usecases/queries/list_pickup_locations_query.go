package queries

import (
	"context"
	"sort"

	"shipments/internal/core/ports"
)

type ListPickupLocationsQueryHandler struct {
	provider ports.TrackingProvider
}

func NewListPickupLocationsQueryHandler(provider ports.TrackingProvider) ListPickupLocationsQueryHandler {
	return ListPickupLocationsQueryHandler{provider: provider}
}

// Handle lists the registered pickup warehouses, primary first.
func (h ListPickupLocationsQueryHandler) Handle(ctx context.Context) ([]ports.PickupLocation, error) {
	locations, err := h.provider.GetPickupLocations(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].Primary && !locations[j].Primary
	})
	return locations, nil
}
