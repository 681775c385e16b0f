package shipment_test

import (
	"testing"
	"time"

	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMergeTracking(t *testing.T) {
	base := shipment.Tracking{
		AWB:             "AWB123",
		CourierName:     "Delhivery",
		CurrentStatus:   "In Transit",
		CurrentLocation: "Pune Hub",
		ShippedDate:     date(2024, 3, 1),
		Events: []shipment.TrackingEvent{
			{Status: "Picked Up", Location: "Mumbai", Date: date(2024, 3, 1)},
		},
	}

	t.Run("present fields overwrite and absent fields stay", func(t *testing.T) {
		update := shipment.Tracking{
			CurrentStatus:        "Out For Delivery",
			ExpectedDeliveryDate: date(2024, 3, 5),
		}

		merged, err := shipment.MergeTracking(base, update)

		require.NoError(t, err)
		assert.Equal(t, "AWB123", merged.AWB)
		assert.Equal(t, "Delhivery", merged.CourierName)
		assert.Equal(t, "Out For Delivery", merged.CurrentStatus)
		assert.Equal(t, "Pune Hub", merged.CurrentLocation)
		assert.Equal(t, base.ShippedDate, merged.ShippedDate)
		assert.Equal(t, update.ExpectedDeliveryDate, merged.ExpectedDeliveryDate)
		assert.Len(t, merged.Events, 1)
	})

	t.Run("reported events replace history", func(t *testing.T) {
		update := shipment.Tracking{Events: []shipment.TrackingEvent{
			{Status: "Picked Up", Location: "Mumbai"},
			{Status: "In Transit", Location: "Pune"},
		}}

		merged, err := shipment.MergeTracking(base, update)

		require.NoError(t, err)
		assert.Len(t, merged.Events, 2)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		before := base.Clone()
		update := shipment.Tracking{ShippedDate: date(2024, 3, 2)}

		_, err := shipment.MergeTracking(base, update)

		require.NoError(t, err)
		assert.Equal(t, before, base)
	})
}

func TestTracking_EstimatedDelivery(t *testing.T) {
	t.Run("expected date wins", func(t *testing.T) {
		tr := shipment.Tracking{ShippedDate: date(2024, 3, 1), ExpectedDeliveryDate: date(2024, 3, 4)}

		w, ok := tr.EstimatedDelivery()

		require.True(t, ok)
		assert.Equal(t, *date(2024, 3, 4), w.Earliest)
		assert.Equal(t, *date(2024, 3, 4), w.Latest)
	})

	t.Run("three to five days after shipping", func(t *testing.T) {
		tr := shipment.Tracking{ShippedDate: date(2024, 3, 1)}

		w, ok := tr.EstimatedDelivery()

		require.True(t, ok)
		assert.Equal(t, *date(2024, 3, 4), w.Earliest)
		assert.Equal(t, *date(2024, 3, 6), w.Latest)
	})

	t.Run("no dates", func(t *testing.T) {
		_, ok := shipment.Tracking{}.EstimatedDelivery()

		assert.False(t, ok)
	})
}

func TestTracking_Status(t *testing.T) {
	assert.Equal(t, shipment.OutForDelivery, shipment.Tracking{CurrentStatus: "OUT FOR DELIVERY"}.Status())
	assert.Equal(t, shipment.Unknown, shipment.Tracking{}.Status())
}
