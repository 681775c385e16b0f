package ports

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// TrackingProvider is the remote shipment/tracking backend. Every method is a
// single request-response. Failures are *errs.TransportError or
// *errs.BackendError, both carrying an operator-facing message.
type TrackingProvider interface {
	CreateShipment(ctx context.Context, orderID string) (Shipment, error)
	TrackByOrderID(ctx context.Context, orderID string) (TrackResult, error)
	TrackByAWB(ctx context.Context, awb string) (TrackResult, error)
	UpdateTrackingInfo(ctx context.Context, orderID string, update TrackingUpdate) (shipment.OrderSnapshot, error)
	SyncStatus(ctx context.Context, orderID string) (SyncResult, error)
	GetAvailableCouriers(ctx context.Context, query CourierQuery) ([]CourierOption, error)
	GetPickupLocations(ctx context.Context) ([]PickupLocation, error)
	RequestReturn(ctx context.Context, orderID, reason string) (shipment.OrderSnapshot, error)
}

// Shipment is the carrier booking returned by CreateShipment.
type Shipment struct {
	ShipmentID  string
	AWBNumber   string
	CourierName string
	InvoiceURL  string
	Message     string
}

// TrackResult is tracking data plus the backend's view of the order, when sent.
type TrackResult struct {
	Tracking *shipment.Tracking
	Order    *shipment.OrderSnapshot
}

// SyncResult is the outcome of a carrier reconciliation on the backend.
// StatusUpdated is the backend's own verdict on whether its record changed.
type SyncResult struct {
	Order         *shipment.OrderSnapshot
	Tracking      *shipment.Tracking
	StatusUpdated bool
	Message       string
}

// TrackingUpdate sets shipment fields on the backend. Empty strings and an
// Unknown status are not sent.
type TrackingUpdate struct {
	AWBNumber  string
	ShipmentID string
	Courier    string
	Status     shipment.Status
}

// IsEmpty reports whether the update carries no field.
func (u TrackingUpdate) IsEmpty() bool {
	return u.AWBNumber == "" && u.ShipmentID == "" && u.Courier == "" && u.Status == shipment.Unknown
}

// CourierQuery asks for couriers serving a route.
type CourierQuery struct {
	PickupPostcode   string
	DeliveryPostcode string
	WeightKg         float64
	COD              bool
}

// CourierOption is one courier offer for a route.
type CourierOption struct {
	ID            int
	Name          string
	Rate          float64
	EstimatedDays int
	ETD           string
	COD           bool
	Rating        float64
}

// PickupLocation is a registered warehouse the carrier collects from.
type PickupLocation struct {
	Name     string
	Address  string
	City     string
	State    string
	Postcode string
	Phone    string
	Primary  bool
}
