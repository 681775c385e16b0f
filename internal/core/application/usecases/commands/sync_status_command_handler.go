package commands

import (
	"context"
	"log/slog"
	"time"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"

	"github.com/google/uuid"
)

// SyncStatusResult is the outcome of a reconciliation.
//
// StatusUpdated is the backend's verdict on its own record. Changed is whether
// the local mirror was written; a repeated sync with no carrier movement
// reports Changed=false and leaves the mirror untouched.
type SyncStatusResult struct {
	Order         *shipment.Order
	Tracking      *shipment.Tracking
	StatusUpdated bool
	Changed       bool
	ChangedFields []string
	Message       string
}

// SyncStatusCommandHandler reconciles one order with the carrier through the
// tracking backend.
//
// Failure of the remote call leaves the mirror untouched; the caller may retry
// by handling the same command again. No automatic retry is performed.
//
// An order that is still unshipped once the carrier's answer is merged is
// rejected with *shipment.ActionError and nothing is written.
type SyncStatusCommandHandler struct {
	uowFactory SyncUoWFactory
	provider   ports.TrackingProvider
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewSyncStatusCommandHandler(
	uowFactory SyncUoWFactory,
	provider ports.TrackingProvider,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SyncStatusCommandHandler {
	return SyncStatusCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
		logger:     logger.With("component", "sync-status"),
	}
}

// Handle asks the backend to re-check the carrier and merges the answer.
//
// Returns:
//   - the merged order and what changed; Changed=false on a repeated sync
//   - errs.TransportError or errs.BackendError when the backend call fails
//   - *shipment.ActionError when the merged order is still unshipped
func (h *SyncStatusCommandHandler) Handle(ctx context.Context, cmd SyncStatusCommand) (SyncStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncStatusResult{}, err
	}

	remote, err := h.provider.SyncStatus(ctx, cmd.OrderID())
	if err != nil {
		return SyncStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncStatusResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outcome, err := applyToOrder(ctx, uow, cmd.OrderID(), func(o *shipment.Order) error {
		if remote.Order != nil {
			o.ApplySnapshot(*remote.Order)
		}
		if remote.Tracking != nil {
			if _, mergeErr := o.ApplyTracking(*remote.Tracking); mergeErr != nil {
				return mergeErr
			}
		}
		return o.EnsureAllowed(shipment.ActionSyncStatus)
	})
	if err != nil {
		return SyncStatusResult{}, err
	}

	if outcome.Changed() {
		record := ports.SyncRecord{
			ID:            uuid.New(),
			OrderID:       cmd.OrderID(),
			StatusBefore:  outcome.Before.Status,
			StatusAfter:   outcome.Order.Status(),
			StatusUpdated: remote.StatusUpdated,
			Changed:       true,
			ChangedFields: outcome.Fields,
			Message:       remote.Message,
			SyncedAt:      time.Now().UTC(),
		}
		if err = uow.SyncLogRepository().Add(ctx, record); err != nil {
			return SyncStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncStatusResult{}, err
	}

	if outcome.StatusChanged() {
		publishStatusChanged(ctx, h.publisher, h.logger, outcome, ports.SourceSync)
	}

	return SyncStatusResult{
		Order:         outcome.Order,
		Tracking:      outcome.Order.Tracking(),
		StatusUpdated: remote.StatusUpdated,
		Changed:       outcome.Changed(),
		ChangedFields: outcome.Fields,
		Message:       remote.Message,
	}, nil
}

// publishStatusChanged notifies observers after a committed change. A failed
// publish is logged; the change itself is already durable.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	outcome mergeOutcome,
	source ports.StatusChangeSource,
) {
	event := ports.NewStatusChangedEvent(
		outcome.Order.ID(),
		outcome.Before.Status,
		outcome.Order.Status(),
		outcome.Order.AWBNumber(),
		source,
	)
	if err := publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("failed to publish status change",
			"order_id", event.OrderID,
			"from", event.From.String(),
			"to", event.To.String(),
			"error", err)
	}
}
