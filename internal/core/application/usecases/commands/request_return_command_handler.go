package commands

import (
	"context"
	"log/slog"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// RequestReturnCommandHandler submits a return request and mirrors the order
// the backend returns. Only dispatched orders can be returned. Returning is a
// special status, so no ordering check applies.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.TrackingProvider
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewRequestReturnCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.TrackingProvider,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
		logger:     logger.With("component", "request-return"),
	}
}

// Handle submits the return with the operator's reason.
//
// Returns:
//   - *shipment.ActionError if the order has no AWB yet
//   - errs.TransportError or errs.BackendError from the remote calls
func (h *RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) (UpdateStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	current, err := currentOrder(ctx, h.uowFactory, h.provider, h.logger, cmd.OrderID())
	if err != nil {
		return UpdateStatusResult{}, err
	}
	if err = current.EnsureAllowed(shipment.ActionRequestReturn); err != nil {
		return UpdateStatusResult{}, err
	}

	snapshot, err := h.provider.RequestReturn(ctx, cmd.OrderID(), cmd.Reason())
	if err != nil {
		return UpdateStatusResult{}, err
	}

	outcome, err := mergeOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *shipment.Order) error {
		o.ApplySnapshot(snapshot)
		return nil
	})
	if err != nil {
		return UpdateStatusResult{}, err
	}

	if outcome.StatusChanged() {
		publishStatusChanged(ctx, h.publisher, h.logger, outcome, ports.SourceReturn)
	}

	return UpdateStatusResult{Order: outcome.Order, Changed: outcome.Changed()}, nil
}
