package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCarrierStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected shipment.Status
		ok       bool
	}{
		{"Delivered", shipment.Delivered, true},
		{"DELIVERED", shipment.Delivered, true},
		{"Delivered Early", shipment.DeliveredEarly, true},
		{"Shipment Delivered to consignee", shipment.Delivered, true},
		{"Out For Delivery", shipment.OutForDelivery, true},
		{"Undelivered - customer unavailable", shipment.OutForDelivery, true},
		{"In Transit", shipment.Shipped, true},
		{"Picked Up", shipment.Shipped, true},
		{"Pickup Scheduled", shipment.Processing, true},
		{"Manifest Generated", shipment.Processing, true},
		{"RTO Initiated", shipment.Returning, true},
		{"RTO Delivered", shipment.Returned, true},
		{"Cancelled", shipment.Cancelled, true},
		{"Canceled by seller", shipment.Cancelled, true},
		{"Order Placed", shipment.Pending, true},
		{"", shipment.Unknown, false},
		{"Lost in warehouse", shipment.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s, ok := shipment.NormalizeCarrierStatus(tt.raw)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, s)
		})
	}
}
