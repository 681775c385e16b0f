// Package memory is an in-process order mirror used when no database is
// configured. It follows the same unit of work contract as the postgres
// adapter: writes are staged and only become visible on Commit.
package memory

import (
	"sort"
	"sync"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
)

// Store holds committed orders and sync history. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	orders  map[string]shipment.State
	history map[string][]ports.SyncRecord
}

func NewStore() *Store {
	return &Store{
		orders:  make(map[string]shipment.State),
		history: make(map[string][]ports.SyncRecord),
	}
}

// Seed stores an order directly, outside any unit of work.
func (s *Store) Seed(o *shipment.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o.State()
	return nil
}

// Snapshot returns the committed state of an order, or the zero State.
func (s *Store) Snapshot(id string) shipment.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.orders[id]
	if !ok {
		return shipment.State{}
	}
	return cloneState(st)
}

// SyncHistory returns the committed sync records of an order.
func (s *Store) SyncHistory(id string) []ports.SyncRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.SyncRecord(nil), s.history[id]...)
}

func (s *Store) get(id string) (shipment.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.orders[id]
	return cloneState(st), ok
}

func (s *Store) all() []shipment.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shipment.State, 0, len(s.orders))
	for _, st := range s.orders {
		out = append(out, cloneState(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) apply(c *changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range c.orders {
		s.orders[id] = st
	}
	for _, r := range c.history {
		s.history[r.OrderID] = append(s.history[r.OrderID], r)
	}
}

func cloneState(st shipment.State) shipment.State {
	if st.Tracking != nil {
		t := st.Tracking.Clone()
		st.Tracking = &t
	}
	return st
}
