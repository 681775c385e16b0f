package ports

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// SyncRecord is the audit entry of one reconciliation attempt.
type SyncRecord struct {
	ID            uuid.UUID
	OrderID       string
	StatusBefore  shipment.Status
	StatusAfter   shipment.Status
	StatusUpdated bool
	Changed       bool
	ChangedFields []string
	Message       string
	SyncedAt      time.Time
}

// SyncLogRepository stores reconciliation audit entries.
type SyncLogRepository interface {
	Add(ctx context.Context, record SyncRecord) error
	ListByOrder(ctx context.Context, orderID string) ([]SyncRecord, error)
}
