package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
)

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		status  shipment.Status
		icon    shipment.Icon
		percent int
		tone    shipment.Tone
	}{
		{shipment.Pending, shipment.IconBox, 10, shipment.ToneNeutral},
		{shipment.Processing, shipment.IconSpinner, 25, shipment.ToneNeutral},
		{shipment.Shipped, shipment.IconShipping, 50, shipment.ToneWarning},
		{shipment.OutForDelivery, shipment.IconTruck, 75, shipment.ToneInfo},
		{shipment.Delivered, shipment.IconCheck, 100, shipment.ToneSuccess},
		{shipment.DeliveredEarly, shipment.IconCheck, 100, shipment.ToneSuccess},
		{shipment.Returning, shipment.IconUndo, 50, shipment.ToneCaution},
		{shipment.Returned, shipment.IconUndo, 75, shipment.ToneCaution},
		{shipment.Cancelled, shipment.IconCancel, 100, shipment.ToneDanger},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			b := shipment.BadgeFor(tt.status)

			assert.Equal(t, tt.status, b.Status)
			assert.Equal(t, tt.status.String(), b.Label)
			assert.Equal(t, tt.icon, b.Icon)
			assert.Equal(t, tt.percent, b.Percent)
			assert.Equal(t, tt.tone, b.Tone)
			assert.Equal(t, tt.percent, shipment.ProgressPercent(tt.status))
		})
	}
}

func TestBadgeFor_UnknownRendersAsPending(t *testing.T) {
	assert.Equal(t, shipment.BadgeFor(shipment.Pending), shipment.BadgeFor(shipment.Unknown))
	assert.Equal(t, 10, shipment.ProgressPercent(shipment.Status(77)))
}

func TestProgressSteps(t *testing.T) {
	t.Run("selected ahead of current", func(t *testing.T) {
		steps := shipment.ProgressSteps(shipment.Processing, shipment.OutForDelivery)

		passed := make([]bool, 0, len(steps))
		selected := make([]bool, 0, len(steps))
		for _, s := range steps {
			passed = append(passed, s.Passed)
			selected = append(selected, s.Selected)
		}
		assert.Equal(t, []bool{true, true, false, false, false}, passed)
		assert.Equal(t, []bool{true, true, true, true, false}, selected)
		assert.True(t, steps[3].Active())
		assert.False(t, steps[4].Active())
	})

	t.Run("special selection highlights only what was passed", func(t *testing.T) {
		steps := shipment.ProgressSteps(shipment.Shipped, shipment.Cancelled)

		for i, s := range steps {
			assert.False(t, s.Selected)
			assert.Equal(t, i <= 2, s.Passed)
		}
	})

	t.Run("special current status passes nothing", func(t *testing.T) {
		for _, s := range shipment.ProgressSteps(shipment.Returned, shipment.Returned) {
			assert.False(t, s.Active())
		}
	})

	t.Run("steps follow the progression", func(t *testing.T) {
		steps := shipment.ProgressSteps(shipment.Pending, shipment.Pending)

		for i, s := range shipment.Progression() {
			assert.Equal(t, s, steps[i].Status)
		}
	})
}
