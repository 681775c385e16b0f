package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchedOrder(t *testing.T, status shipment.Status) *shipment.Order {
	t.Helper()
	o, err := shipment.RestoreOrder(shipment.State{
		ID:         "ord-1",
		ShipmentID: "SHP-9",
		AWBNumber:  "AWB123",
		Courier:    "Delhivery",
		Status:     status,
		Payment:    shipment.Payment{Status: shipment.PaymentPaid, Amount: 1499},
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create unshipped pending order", func(t *testing.T) {
		o, err := shipment.NewOrder("ord-1")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ord-1", o.ID())
		assert.Equal(t, shipment.Pending, o.Status())
		assert.Equal(t, shipment.PhaseUnshipped, o.Phase())
		assert.Equal(t, []shipment.Action{shipment.ActionCreateShipment}, o.AllowedActions())
		assert.Nil(t, o.Tracking())
		assert.False(t, o.Payment().IsPaid())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		o, err := shipment.NewOrder("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero shipment.Order
	require.ErrorIs(t, zero.Validate(), shipment.ErrOrderIsNotConstructed)

	var nilOrder *shipment.Order
	require.ErrorIs(t, nilOrder.Validate(), shipment.ErrOrderIsNotConstructed)
}

func TestOrder_Phase(t *testing.T) {
	awaiting, err := shipment.RestoreOrder(shipment.State{ID: "ord-2", ShipmentID: "SHP-1", Status: shipment.Processing})
	require.NoError(t, err)

	assert.Equal(t, shipment.PhaseAwaitingAWB, awaiting.Phase())
	assert.True(t, awaiting.Phase().Allows(shipment.ActionUpdateTracking))
	assert.False(t, awaiting.Phase().Allows(shipment.ActionCreateShipment))

	dispatched := dispatchedOrder(t, shipment.Shipped)
	assert.Equal(t, shipment.PhaseDispatched, dispatched.Phase())
	assert.True(t, dispatched.Phase().Allows(shipment.ActionSyncStatus))
	assert.Equal(t, "dispatched", dispatched.Phase().String())
}

func TestOrder_CanCreateShipment(t *testing.T) {
	o, err := shipment.NewOrder("ord-1")
	require.NoError(t, err)
	require.NoError(t, o.CanCreateShipment())

	err = dispatchedOrder(t, shipment.Shipped).CanCreateShipment()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "shipment already created")
}

func TestOrder_EnsureAllowed(t *testing.T) {
	unshipped, err := shipment.NewOrder("ord-2")
	require.NoError(t, err)
	awaiting, err := shipment.RestoreOrder(shipment.State{ID: "ord-3", ShipmentID: "SHP-3", Status: shipment.Processing})
	require.NoError(t, err)
	dispatched := dispatchedOrder(t, shipment.Shipped)

	tests := []struct {
		name    string
		order   *shipment.Order
		action  shipment.Action
		allowed bool
	}{
		{"unshipped create", unshipped, shipment.ActionCreateShipment, true},
		{"unshipped status update", unshipped, shipment.ActionUpdateStatus, false},
		{"unshipped sync", unshipped, shipment.ActionSyncStatus, false},
		{"unshipped tracking update", unshipped, shipment.ActionUpdateTracking, false},
		{"awaiting tracking update", awaiting, shipment.ActionUpdateTracking, true},
		{"awaiting sync", awaiting, shipment.ActionSyncStatus, true},
		{"awaiting status update", awaiting, shipment.ActionUpdateStatus, false},
		{"awaiting return", awaiting, shipment.ActionRequestReturn, false},
		{"dispatched status update", dispatched, shipment.ActionUpdateStatus, true},
		{"dispatched return", dispatched, shipment.ActionRequestReturn, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.EnsureAllowed(tt.action)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, shipment.ErrActionNotAllowed)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	err = unshipped.EnsureAllowed(shipment.ActionUpdateStatus)
	assert.Equal(t, "Create a shipment for this order first.", errs.UserMessage(err, ""))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)

		require.NoError(t, o.ChangeStatus(shipment.OutForDelivery, shipment.PermissiveFromUnordered))
		assert.Equal(t, shipment.OutForDelivery, o.Status())
	})

	t.Run("backward is rejected and state kept", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)

		err := o.ChangeStatus(shipment.Processing, shipment.PermissiveFromUnordered)

		require.ErrorIs(t, err, shipment.ErrTransitionNotAllowed)
		assert.Equal(t, shipment.Shipped, o.Status())
	})
}

func TestOrder_ApplySnapshot(t *testing.T) {
	t.Run("reported fields overwrite, empty fields are kept", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)

		changed := o.ApplySnapshot(shipment.OrderSnapshot{ID: "ord-1", Status: "Out for Delivery"})

		assert.True(t, changed)
		assert.Equal(t, shipment.OutForDelivery, o.Status())
		assert.Equal(t, "AWB123", o.AWBNumber())
		assert.Equal(t, "Delhivery", o.Courier())
		assert.Equal(t, "SHP-9", o.ShipmentID())
	})

	t.Run("carrier truth bypasses ordering", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Delivered)

		o.ApplySnapshot(shipment.OrderSnapshot{Status: "In Transit"})

		assert.Equal(t, shipment.Shipped, o.Status())
	})

	t.Run("unrecognized status is kept as unknown", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)

		o.ApplySnapshot(shipment.OrderSnapshot{Status: "Lost in warehouse"})

		assert.Equal(t, shipment.Unknown, o.Status())
		assert.Equal(t, shipment.Pending, o.DisplayStatus())
	})

	t.Run("applying the same snapshot twice reports no change", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)
		snap := shipment.OrderSnapshot{AWBNumber: "AWB777", Courier: "BlueDart", Status: "Delivered"}

		assert.True(t, o.ApplySnapshot(snap))
		before := o.State()
		assert.False(t, o.ApplySnapshot(snap))
		assert.Equal(t, before, o.State())
	})

	t.Run("payment is merged", func(t *testing.T) {
		o, err := shipment.NewOrder("ord-3")
		require.NoError(t, err)

		changed := o.ApplySnapshot(shipment.OrderSnapshot{Payment: &shipment.Payment{Status: shipment.PaymentPaid}})

		assert.True(t, changed)
		assert.True(t, o.Payment().IsPaid())
	})
}

func TestOrder_ApplyTracking(t *testing.T) {
	t.Run("fills linkage from tracking", func(t *testing.T) {
		o, err := shipment.RestoreOrder(shipment.State{ID: "ord-4", ShipmentID: "SHP-4", Status: shipment.Processing})
		require.NoError(t, err)

		changed, err := o.ApplyTracking(shipment.Tracking{AWB: "AWB444", CourierName: "Ekart", CurrentStatus: "Picked Up"})

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "AWB444", o.AWBNumber())
		assert.Equal(t, "Ekart", o.Courier())
		assert.Equal(t, shipment.Shipped, o.DisplayStatus())
		assert.Equal(t, shipment.Processing, o.Status())
	})

	t.Run("empty tracking on an order without tracking is a no-op", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)

		changed, err := o.ApplyTracking(shipment.Tracking{})

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Nil(t, o.Tracking())
	})

	t.Run("same tracking twice reports no change", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)
		tr := shipment.Tracking{CurrentStatus: "In Transit", ShippedDate: date(2024, 3, 1)}

		changed, err := o.ApplyTracking(tr)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = o.ApplyTracking(tr)
		require.NoError(t, err)
		assert.False(t, changed)

		w, ok := o.EstimatedDelivery()
		require.True(t, ok)
		assert.Equal(t, *date(2024, 3, 4), w.Earliest)
	})

	t.Run("returned tracking is a copy", func(t *testing.T) {
		o := dispatchedOrder(t, shipment.Shipped)
		_, err := o.ApplyTracking(shipment.Tracking{CurrentLocation: "Pune"})
		require.NoError(t, err)

		tr := o.Tracking()
		tr.CurrentLocation = "changed"

		assert.Equal(t, "Pune", o.Tracking().CurrentLocation)
	})
}

func TestOrder_Equal(t *testing.T) {
	a := dispatchedOrder(t, shipment.Shipped)
	b := dispatchedOrder(t, shipment.Shipped)
	c := dispatchedOrder(t, shipment.Delivered)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestListFilter_Matches(t *testing.T) {
	unshipped, err := shipment.RestoreOrder(shipment.State{ID: "ORD-ABC", Status: shipment.Pending})
	require.NoError(t, err)
	shipped := dispatchedOrder(t, shipment.Shipped)

	tests := []struct {
		name     string
		filter   shipment.ListFilter
		order    *shipment.Order
		expected bool
	}{
		{"all", shipment.ListFilter{View: shipment.ViewAll}, unshipped, true},
		{"shipped excludes no awb", shipment.ListFilter{View: shipment.ViewShipped}, unshipped, false},
		{"shipped", shipment.ListFilter{View: shipment.ViewShipped}, shipped, true},
		{"unshipped", shipment.ListFilter{View: shipment.ViewUnshipped}, unshipped, true},
		{"unshipped excludes awb", shipment.ListFilter{View: shipment.ViewUnshipped}, shipped, false},
		{"paid", shipment.ListFilter{View: shipment.ViewPaid}, shipped, true},
		{"unpaid", shipment.ListFilter{View: shipment.ViewPaid}, unshipped, false},
		{"search by id", shipment.ListFilter{Search: "abc"}, unshipped, true},
		{"search by awb", shipment.ListFilter{Search: "awb12"}, shipped, true},
		{"search miss", shipment.ListFilter{Search: "zzz"}, shipped, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(tt.order))
		})
	}
}

func TestParseView(t *testing.T) {
	v, err := shipment.ParseView("")
	require.NoError(t, err)
	assert.Equal(t, shipment.ViewAll, v)

	v, err = shipment.ParseView("Shipped")
	require.NoError(t, err)
	assert.Equal(t, shipment.ViewShipped, v)

	_, err = shipment.ParseView("archived")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangedFields(t *testing.T) {
	o := dispatchedOrder(t, shipment.Shipped)
	before := o.State()

	o.ApplySnapshot(shipment.OrderSnapshot{Status: "Delivered", Courier: "BlueDart"})
	_, err := o.ApplyTracking(shipment.Tracking{CurrentStatus: "Delivered"})
	require.NoError(t, err)

	assert.Equal(t, []string{"courier", "shipmentStatus", "tracking"}, shipment.ChangedFields(before, o.State()))
	assert.Empty(t, shipment.ChangedFields(before, before))
}
