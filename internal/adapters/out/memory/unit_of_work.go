package memory

import (
	"context"
	"errors"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without a Begin.
var ErrInvalidTransaction = errors.New("invalid transaction")

type changeSet struct {
	orders  map[string]shipment.State
	history []ports.SyncRecord
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit. Reads see staged writes first.
// Without Begin, writes are applied immediately.
type UnitOfWork struct {
	store   *Store
	pending *changeSet
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.pending != nil {
		return nil
	}
	u.pending = &changeSet{orders: make(map[string]shipment.State)}
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.pending == nil {
		return ErrInvalidTransaction
	}
	u.store.apply(u.pending)
	u.pending = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.pending == nil {
		return ErrInvalidTransaction
	}
	u.pending = nil
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) SyncLogRepository() ports.SyncLogRepository {
	return &SyncLogRepository{uow: u}
}

func (u *UnitOfWork) write(c *changeSet) {
	if u.pending == nil {
		u.store.apply(c)
		return
	}
	for id, st := range c.orders {
		u.pending.orders[id] = st
	}
	u.pending.history = append(u.pending.history, c.history...)
}

func (u *UnitOfWork) read(id string) (shipment.State, bool) {
	if u.pending != nil {
		if st, ok := u.pending.orders[id]; ok {
			return cloneState(st), true
		}
	}
	return u.store.get(id)
}
