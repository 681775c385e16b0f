package queries_test

import (
	"context"
	"testing"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableCouriersQuery(t *testing.T) {
	tests := []struct {
		name     string
		pickup   string
		delivery string
		weight   float64
		target   error
	}{
		{"missing pickup", "", "560001", 1, errs.ErrValueIsRequired},
		{"missing delivery", "110001", " ", 1, errs.ErrValueIsRequired},
		{"zero weight", "110001", "560001", 0, errs.ErrValueIsOutOfRange},
		{"too heavy", "110001", "560001", 250, errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetAvailableCouriersQuery(tt.pickup, tt.delivery, tt.weight, false)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestGetAvailableCouriersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	provider := new(MockTrackingProvider)
	provider.On("GetAvailableCouriers", ctx, ports.CourierQuery{
		PickupPostcode:   "110001",
		DeliveryPostcode: "560001",
		WeightKg:         0.5,
		COD:              true,
	}).Return([]ports.CourierOption{
		{ID: 1, Name: "Xpress", Rate: 120, COD: true},
		{ID: 2, Name: "Prepaid Only", Rate: 40, COD: false},
		{ID: 3, Name: "Budget", Rate: 60, COD: true},
	}, nil)

	q, err := queries.NewGetAvailableCouriersQuery("110001", "560001", 0.5, true)
	require.NoError(t, err)
	got, err := queries.NewGetAvailableCouriersQueryHandler(provider).Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Budget", got[0].Name)
	assert.Equal(t, "Xpress", got[1].Name)
}

func TestListPickupLocationsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("primary first", func(t *testing.T) {
		provider := new(MockTrackingProvider)
		provider.On("GetPickupLocations", ctx).Return([]ports.PickupLocation{
			{Name: "Overflow"},
			{Name: "Main", Primary: true},
		}, nil)

		got, err := queries.NewListPickupLocationsQueryHandler(provider).Handle(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Main", got[0].Name)
	})

	t.Run("remote error is returned", func(t *testing.T) {
		provider := new(MockTrackingProvider)
		provider.On("GetPickupLocations", mock.Anything).
			Return([]ports.PickupLocation(nil), errs.NewTransportError("pickup locations", "Failed to fetch pickup locations", nil))

		_, err := queries.NewListPickupLocationsQueryHandler(provider).Handle(ctx)
		require.ErrorIs(t, err, errs.ErrTransport)
		assert.Equal(t, "Failed to fetch pickup locations", errs.UserMessage(err, ""))
	})
}
