package memory

import (
	"context"

	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// SyncLogRepository implements ports.SyncLogRepository over a Store.
type SyncLogRepository struct {
	uow *UnitOfWork
}

func (r *SyncLogRepository) Add(_ context.Context, record ports.SyncRecord) error {
	if record.OrderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	record.ChangedFields = append([]string(nil), record.ChangedFields...)
	r.uow.write(&changeSet{history: []ports.SyncRecord{record}})
	return nil
}

func (r *SyncLogRepository) ListByOrder(_ context.Context, orderID string) ([]ports.SyncRecord, error) {
	records := r.uow.store.SyncHistory(orderID)
	if r.uow.pending != nil {
		for _, rec := range r.uow.pending.history {
			if rec.OrderID == orderID {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}
