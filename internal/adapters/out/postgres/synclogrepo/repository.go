package synclogrepo

import (
	"context"
	"strings"

	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSyncLogRepository implements ports.SyncLogRepository. Entries are
// append-only.
type GormSyncLogRepository struct {
	db *gorm.DB
}

func NewGormSyncLogRepository(db *gorm.DB) *GormSyncLogRepository {
	return &GormSyncLogRepository{db: db}
}

func (r *GormSyncLogRepository) Add(ctx context.Context, record ports.SyncRecord) error {
	if strings.TrimSpace(record.OrderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder returns the entries of one order, oldest first.
func (r *GormSyncLogRepository) ListByOrder(ctx context.Context, orderID string) ([]ports.SyncRecord, error) {
	var dtos []SyncRecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("synced_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.SyncRecord, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toDomain(dto))
	}
	return out, nil
}
