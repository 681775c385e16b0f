// Package synclogrepo persists reconciliation audit entries with GORM.
package synclogrepo

import (
	"time"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SyncRecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       string    `gorm:"index:idx_sync_records_order_synced,priority:1"`
	StatusBefore  string
	StatusAfter   string
	StatusUpdated bool
	Changed       bool
	ChangedFields pq.StringArray `gorm:"type:text[]"`
	Message       string
	SyncedAt      time.Time `gorm:"index:idx_sync_records_order_synced,priority:2"`
}

func (SyncRecordDTO) TableName() string {
	return "sync_records"
}

func fromDomain(r ports.SyncRecord) SyncRecordDTO {
	id := r.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return SyncRecordDTO{
		ID:            id,
		OrderID:       r.OrderID,
		StatusBefore:  r.StatusBefore.String(),
		StatusAfter:   r.StatusAfter.String(),
		StatusUpdated: r.StatusUpdated,
		Changed:       r.Changed,
		ChangedFields: pq.StringArray(r.ChangedFields),
		Message:       r.Message,
		SyncedAt:      r.SyncedAt.UTC(),
	}
}

func toDomain(dto SyncRecordDTO) ports.SyncRecord {
	return ports.SyncRecord{
		ID:            dto.ID,
		OrderID:       dto.OrderID,
		StatusBefore:  shipment.StatusFromName(dto.StatusBefore),
		StatusAfter:   shipment.StatusFromName(dto.StatusAfter),
		StatusUpdated: dto.StatusUpdated,
		Changed:       dto.Changed,
		ChangedFields: []string(dto.ChangedFields),
		Message:       dto.Message,
		SyncedAt:      dto.SyncedAt,
	}
}
