package memory

import (
	"context"
	"fmt"
	"sort"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.read(aggregate.ID()); ok {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	r.put(aggregate)
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.read(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	r.put(aggregate)
	return nil
}

func (r *OrderRepository) Save(_ context.Context, aggregate *shipment.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.put(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (*shipment.Order, error) {
	st, ok := r.uow.read(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return shipment.RestoreOrder(st)
}

func (r *OrderRepository) Find(_ context.Context, filter shipment.ListFilter) ([]*shipment.Order, error) {
	return r.collect(filter.Matches)
}

func (r *OrderRepository) GetAllInTransit(_ context.Context) ([]*shipment.Order, error) {
	return r.collect(func(o *shipment.Order) bool {
		return o.Phase() != shipment.PhaseUnshipped && !isFinal(o.Status())
	})
}

func (r *OrderRepository) put(aggregate *shipment.Order) {
	r.uow.write(&changeSet{orders: map[string]shipment.State{aggregate.ID(): aggregate.State()}})
}

func (r *OrderRepository) collect(keep func(*shipment.Order) bool) ([]*shipment.Order, error) {
	states := r.uow.store.all()
	if r.uow.pending != nil {
		seen := make(map[string]int, len(states))
		for i, st := range states {
			seen[st.ID] = i
		}
		for id, st := range r.uow.pending.orders {
			if i, ok := seen[id]; ok {
				states[i] = cloneState(st)
			} else {
				states = append(states, cloneState(st))
			}
		}
		sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	}

	out := make([]*shipment.Order, 0, len(states))
	for _, st := range states {
		o, err := shipment.RestoreOrder(st)
		if err != nil {
			return nil, err
		}
		if keep(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func isFinal(s shipment.Status) bool {
	return s.IsDelivered() || s == shipment.Returned || s == shipment.Cancelled
}
