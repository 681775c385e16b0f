package commands

import (
	"context"
	"log/slog"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// UpdateTrackingInfoCommandHandler pushes manual tracking fields to the
// backend and mirrors the returned order. The order needs a shipment id; a
// status in the update is held to the same forward-only rule as
// UpdateStatusCommand, checked against the backend's current record.
type UpdateTrackingInfoCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.TrackingProvider
	publisher  ports.EventPublisher
	policy     shipment.Policy
	logger     *slog.Logger
}

func NewUpdateTrackingInfoCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.TrackingProvider,
	publisher ports.EventPublisher,
	policy shipment.Policy,
	logger *slog.Logger,
) UpdateTrackingInfoCommandHandler {
	return UpdateTrackingInfoCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
		policy:     policy,
		logger:     logger.With("component", "update-tracking"),
	}
}

// Handle sends the update and mirrors the backend's answer.
//
// Returns:
//   - *shipment.ActionError if the order has no shipment yet
//   - *shipment.TransitionError if the update carries a backward status
//   - errs.TransportError or errs.BackendError from the remote calls
//
// Example:
//
//	cmd, _ := NewUpdateTrackingInfoCommand("66f1c0a2e4b0", ports.TrackingUpdate{AWBNumber: "1234567890"})
//	res, err := handler.Handle(ctx, cmd)
//	res.Order.Phase() // PhaseDispatched
func (h *UpdateTrackingInfoCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTrackingInfoCommand,
) (UpdateStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	current, err := currentOrder(ctx, h.uowFactory, h.provider, h.logger, cmd.OrderID())
	if err != nil {
		return UpdateStatusResult{}, err
	}
	if err = current.EnsureAllowed(shipment.ActionUpdateTracking); err != nil {
		return UpdateStatusResult{}, err
	}

	update := cmd.Update()
	if update.Status != shipment.Unknown {
		if err = shipment.ValidateTransition(current.Status(), update.Status, h.policy); err != nil {
			return UpdateStatusResult{}, err
		}
	}

	snapshot, err := h.provider.UpdateTrackingInfo(ctx, cmd.OrderID(), update)
	if err != nil {
		return UpdateStatusResult{}, err
	}

	outcome, err := mergeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *shipment.Order) error {
		o.ApplySnapshot(withUpdateDefaults(snapshot, update))
		return nil
	})
	if err != nil {
		return UpdateStatusResult{}, err
	}

	if outcome.StatusChanged() {
		publishStatusChanged(ctx, h.publisher, h.logger, outcome, ports.SourceManual)
	}

	return UpdateStatusResult{Order: outcome.Order, Changed: outcome.Changed()}, nil
}

// withUpdateDefaults fills fields the backend echoed back empty with the
// values that were sent.
func withUpdateDefaults(s shipment.OrderSnapshot, u ports.TrackingUpdate) shipment.OrderSnapshot {
	if s.AWBNumber == "" {
		s.AWBNumber = u.AWBNumber
	}
	if s.ShipmentID == "" {
		s.ShipmentID = u.ShipmentID
	}
	if s.Courier == "" {
		s.Courier = u.Courier
	}
	if s.Status == "" && u.Status != shipment.Unknown {
		s.Status = u.Status.String()
	}
	return s
}
