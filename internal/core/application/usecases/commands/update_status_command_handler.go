package commands

import (
	"context"
	"log/slog"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// UpdateStatusResult carries the order as stored after the backend accepted the change.
type UpdateStatusResult struct {
	Order   *shipment.Order
	Changed bool
}

// UpdateStatusCommandHandler applies a manual status change.
//
// The order must be dispatched. The forward-only rule is checked against the
// status the backend reports now, laid over the mirror, before any change is
// sent; a rejection names both statuses and nothing is sent. The backend's
// returned order is merged into the mirror.
//
// Returns:
//   - *shipment.ActionError if the order has no AWB yet
//   - *shipment.TransitionError if the move goes backward
//   - errs.TransportError or errs.BackendError from the remote calls
//
// Example:
//
//	cmd, _ := NewUpdateStatusCommand("66f1c0a2e4b0", shipment.OutForDelivery)
//	res, err := handler.Handle(ctx, cmd)
//	var te *shipment.TransitionError
//	if errors.As(err, &te) {
//	    // "cannot move from Delivered back to Out for Delivery"
//	}
type UpdateStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.TrackingProvider
	publisher  ports.EventPublisher
	policy     shipment.Policy
	logger     *slog.Logger
}

func NewUpdateStatusCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.TrackingProvider,
	publisher ports.EventPublisher,
	policy shipment.Policy,
	logger *slog.Logger,
) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
		policy:     policy,
		logger:     logger.With("component", "update-status"),
	}
}

func (h *UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (UpdateStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	current, err := currentOrder(ctx, h.uowFactory, h.provider, h.logger, cmd.OrderID())
	if err != nil {
		return UpdateStatusResult{}, err
	}
	if err = current.EnsureAllowed(shipment.ActionUpdateStatus); err != nil {
		return UpdateStatusResult{}, err
	}
	if err = shipment.ValidateTransition(current.Status(), cmd.Status(), h.policy); err != nil {
		return UpdateStatusResult{}, err
	}

	snapshot, err := h.provider.UpdateTrackingInfo(ctx, cmd.OrderID(), ports.TrackingUpdate{Status: cmd.Status()})
	if err != nil {
		return UpdateStatusResult{}, err
	}

	outcome, err := mergeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *shipment.Order) error {
		if snapshot.Status == "" {
			snapshot.Status = cmd.Status().String()
		}
		o.ApplySnapshot(snapshot)
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
