package queries

import (
	"context"
	"errors"
	"strings"

	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrGetSyncHistoryQueryIsNotConstructed = errors.New(
	"GetSyncHistoryQuery must be created via NewGetSyncHistoryQuery constructor",
)

// SyncLogReader is the read side of the reconciliation audit log.
type SyncLogReader interface {
	ListByOrder(ctx context.Context, orderID string) ([]ports.SyncRecord, error)
}

// GetSyncHistoryQuery asks for the reconciliations that changed one order.
type GetSyncHistoryQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetSyncHistoryQuery(orderID string) (GetSyncHistoryQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetSyncHistoryQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetSyncHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSyncHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetSyncHistoryQueryIsNotConstructed)
}

func (q GetSyncHistoryQuery) OrderID() string {
	return q.orderID
}

// GetSyncHistoryQueryHandler lists audit entries oldest first. An order that
// was never changed by a sync has an empty history, not an error.
type GetSyncHistoryQueryHandler struct {
	log SyncLogReader
}

func NewGetSyncHistoryQueryHandler(log SyncLogReader) GetSyncHistoryQueryHandler {
	return GetSyncHistoryQueryHandler{log: log}
}

func (h GetSyncHistoryQueryHandler) Handle(ctx context.Context, query GetSyncHistoryQuery) ([]ports.SyncRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.log.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []ports.SyncRecord{}
	}
	return records, nil
}
