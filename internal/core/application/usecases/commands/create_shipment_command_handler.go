package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// CreateShipmentResult is the booked shipment. InvoiceURL is empty when the
// backend did not generate an invoice; callers then show a plain confirmation.
type CreateShipmentResult struct {
	Order      *shipment.Order
	Shipment   ports.Shipment
	InvoiceURL string
	Message    string
}

// HasInvoice reports whether an invoice link can be offered.
func (r CreateShipmentResult) HasInvoice() bool {
	return r.InvoiceURL != ""
}

// CreateShipmentCommandHandler books a shipment with the carrier and records
// the returned linkage (shipment id, AWB when already issued, courier, invoice).
type CreateShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.TrackingProvider
}

func NewCreateShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.TrackingProvider,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
	}
}

func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	current, _, err := loadOrder(ctx, h.uowFactory, cmd.OrderID())
	if err != nil {
		return CreateShipmentResult{}, err
	}
	if err = current.CanCreateShipment(); err != nil {
		return CreateShipmentResult{}, err
	}

	booked, err := h.provider.CreateShipment(ctx, cmd.OrderID())
	if err != nil {
		return CreateShipmentResult{}, err
	}

	outcome, err := mergeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *shipment.Order) error {
		o.ApplySnapshot(shipment.OrderSnapshot{
			ShipmentID: booked.ShipmentID,
			AWBNumber:  booked.AWBNumber,
			Courier:    booked.CourierName,
			InvoiceURL: booked.InvoiceURL,
		})
		return nil
	})
	if err != nil {
		return CreateShipmentResult{}, err
	}

	return CreateShipmentResult{
		Order:      outcome.Order,
		Shipment:   booked,
		InvoiceURL: booked.InvoiceURL,
		Message:    booked.Message,
	}, nil
}
