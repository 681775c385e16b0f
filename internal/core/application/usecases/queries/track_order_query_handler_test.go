package queries_test

import (
	"context"
	"testing"
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery(t *testing.T) {
	_, err := queries.NewTrackOrderQuery("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	q, err := queries.NewTrackOrderQuery(" ord-1 ")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", q.OrderID())
	require.ErrorIs(t, queries.TrackOrderQuery{}.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestTrackOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	shipped := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("merges live tracking without writing the mirror", func(t *testing.T) {
		reader, store := seededReader(shipment.State{ID: "ord-1", ShipmentID: "SHP-1", Status: shipment.Shipped})
		provider := new(MockTrackingProvider)
		provider.On("TrackByOrderID", ctx, "ord-1").Return(ports.TrackResult{
			Tracking: &shipment.Tracking{
				AWB:           "AWB1",
				CourierName:   "Delhivery",
				CurrentStatus: "Out for Delivery",
				ShippedDate:   &shipped,
			},
			Order: &shipment.OrderSnapshot{ID: "ord-1", Status: "Shipped"},
		}, nil)

		q, err := queries.NewTrackOrderQuery("ord-1")
		require.NoError(t, err)
		resp, err := queries.NewTrackOrderQueryHandler(provider, reader).Handle(ctx, q)

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.False(t, resp.Fallback)
		assert.Equal(t, "AWB1", resp.Order.AWBNumber())
		assert.Equal(t, shipment.OutForDelivery, resp.Badge.Status)
		require.NotNil(t, resp.Window)
		assert.Equal(t, shipped.AddDate(0, 0, 3), resp.Window.Earliest)

		assert.Empty(t, store.Snapshot("ord-1").AWBNumber)
		provider.AssertExpectations(t)
	})

	t.Run("remote failure falls back to the local record", func(t *testing.T) {
		reader, _ := seededReader(shipment.State{ID: "ord-2", AWBNumber: "AWB2", Status: shipment.Shipped})
		provider := new(MockTrackingProvider)
		remoteErr := errs.NewTransportError("track order", "", context.DeadlineExceeded)
		provider.On("TrackByOrderID", ctx, "ord-2").Return(ports.TrackResult{}, remoteErr)

		q, _ := queries.NewTrackOrderQuery("ord-2")
		resp, err := queries.NewTrackOrderQueryHandler(provider, reader).Handle(ctx, q)

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.True(t, resp.Fallback)
		assert.Equal(t, "Failed to track order", resp.Message)
		assert.Equal(t, "AWB2", resp.Order.AWBNumber())
		assert.Equal(t, shipment.Shipped, resp.Badge.Status)
		require.ErrorIs(t, resp.Err, errs.ErrTransport)
	})

	t.Run("remote failure without local record", func(t *testing.T) {
		reader, _ := seededReader()
		provider := new(MockTrackingProvider)
		provider.On("TrackByOrderID", ctx, "ord-3").
			Return(ports.TrackResult{}, errs.NewBackendError("track order", 404, "Order not found"))

		q, _ := queries.NewTrackOrderQuery("ord-3")
		resp, err := queries.NewTrackOrderQueryHandler(provider, reader).Handle(ctx, q)

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.False(t, resp.Fallback)
		assert.Nil(t, resp.Order)
		assert.Equal(t, "Order not found", resp.Message)
	})
}

func TestTrackByAWBQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("status comes from the carrier", func(t *testing.T) {
		provider := new(MockTrackingProvider)
		provider.On("TrackByAWB", ctx, "AWB9").Return(ports.TrackResult{
			Tracking: &shipment.Tracking{CurrentStatus: "DELIVERED"},
		}, nil)

		q, err := queries.NewTrackByAWBQuery("AWB9")
		require.NoError(t, err)
		resp, err := queries.NewTrackByAWBQueryHandler(provider).Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, "AWB9", resp.Tracking.AWB)
		assert.Equal(t, shipment.Delivered, resp.Status)
		assert.Equal(t, 100, resp.Badge.Percent)
	})

	t.Run("falls back to the order status", func(t *testing.T) {
		provider := new(MockTrackingProvider)
		provider.On("TrackByAWB", ctx, "AWB8").Return(ports.TrackResult{
			Order: &shipment.OrderSnapshot{Status: "Processing"},
		}, nil)

		q, _ := queries.NewTrackByAWBQuery("AWB8")
		resp, err := queries.NewTrackByAWBQueryHandler(provider).Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, shipment.Processing, resp.Status)
	})

	t.Run("empty awb", func(t *testing.T) {
		_, err := queries.NewTrackByAWBQuery("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
