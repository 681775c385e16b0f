package queries

import (
	"context"
	"errors"
	"sort"
	"strings"

	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
	"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
)

const maxParcelWeightKg = 100

type GetAvailableCouriersQuery struct {
	pickupPostcode   string
	deliveryPostcode string
	weightKg         float64
	cod              bool

	guard guard.ConstructorGuard
}

func NewGetAvailableCouriersQuery(
	pickupPostcode, deliveryPostcode string, weightKg float64, cod bool,
) (GetAvailableCouriersQuery, error) {
	pickupPostcode = strings.TrimSpace(pickupPostcode)
	deliveryPostcode = strings.TrimSpace(deliveryPostcode)
	if pickupPostcode == "" {
		return GetAvailableCouriersQuery{}, errs.NewValueIsRequiredError("pickupPostcode")
	}
	if deliveryPostcode == "" {
		return GetAvailableCouriersQuery{}, errs.NewValueIsRequiredError("deliveryPostcode")
	}
	if weightKg <= 0 || weightKg > maxParcelWeightKg {
		return GetAvailableCouriersQuery{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, maxParcelWeightKg)
	}

	return GetAvailableCouriersQuery{
		pickupPostcode:   pickupPostcode,
		deliveryPostcode: deliveryPostcode,
		weightKg:         weightKg,
		cod:              cod,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

func (q GetAvailableCouriersQuery) toPort() ports.CourierQuery {
	return ports.CourierQuery{
		PickupPostcode:   q.pickupPostcode,
		DeliveryPostcode: q.deliveryPostcode,
		WeightKg:         q.weightKg,
		COD:              q.cod,
	}
}

type GetAvailableCouriersQueryHandler struct {
	provider ports.TrackingProvider
}

func NewGetAvailableCouriersQueryHandler(provider ports.TrackingProvider) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{provider: provider}
}

// Handle returns the couriers serving the route, cheapest first.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context, query GetAvailableCouriersQuery,
) ([]ports.CourierOption, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	options, err := h.provider.GetAvailableCouriers(ctx, query.toPort())
	if err != nil {
		return nil, err
	}

	sorted := make([]ports.CourierOption, 0, len(options))
	for _, o := range options {
		if query.cod && !o.COD {
			continue
		}
		sorted = append(sorted, o)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rate < sorted[j].Rate
	})
	return sorted, nil
}
