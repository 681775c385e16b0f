package commands

import (
	"context"
	"errors"
	"log/slog"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// mergeOutcome is the local effect of applying remote data to an order.
type mergeOutcome struct {
	Order   *shipment.Order
	Before  shipment.State
	Created bool
	Fields  []string
}

// Changed reports whether the local record was written.
func (m mergeOutcome) Changed() bool {
	return m.Created || len(m.Fields) > 0
}

// StatusChanged reports whether the stored status moved.
func (m mergeOutcome) StatusChanged() bool {
	return m.Before.Status != m.Order.Status()
}

// loadOrder reads an order from the mirror in a short read transaction, so
// no transaction is held across remote calls. A missing order yields a fresh
// unshipped one with found=false.
func loadOrder(ctx context.Context, factory OrderUoWFactory, orderID string) (*shipment.Order, bool, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		o, err = shipment.NewOrder(orderID)
		return o, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return o, true, nil
}

// currentOrder is the order as the backend holds it now, laid over the
// mirrored record. Phase and transition checks run against it, so an empty or
// stale mirror cannot weaken them. Nothing is written.
//
// When the backend cannot be read, a mirrored order is used as it is; an order
// the mirror has never seen fails with the remote error.
func currentOrder(
	ctx context.Context,
	factory OrderUoWFactory,
	provider ports.TrackingProvider,
	logger *slog.Logger,
	orderID string,
) (*shipment.Order, error) {
	o, found, err := loadOrder(ctx, factory, orderID)
	if err != nil {
		return nil, err
	}

	remote, err := provider.TrackByOrderID(ctx, orderID)
	if err != nil {
		if !found {
			return nil, err
		}
		logger.WarnContext(ctx, "Backend unavailable, checking against mirrored order",
			"order_id", orderID, "error", err)
		return o, nil
	}

	if remote.Order != nil {
		o.ApplySnapshot(*remote.Order)
	}
	if remote.Tracking != nil {
		if _, err = o.ApplyTracking(*remote.Tracking); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// mergeOrder re-reads the order inside a transaction, applies fn and saves the
// order only when its state changed.
func mergeOrder(
	ctx context.Context,
	factory OrderUoWFactory,
	orderID string,
	fn func(o *shipment.Order) error,
) (mergeOutcome, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return mergeOutcome{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outcome, err := applyToOrder(ctx, uow, orderID, fn)
	if err != nil {
		return mergeOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return mergeOutcome{}, err
	}
	return outcome, nil
}

// applyToOrder is the body of mergeOrder for callers that own the transaction.
func applyToOrder(
	ctx context.Context,
	uow OrderRepoFactory,
	orderID string,
	fn func(o *shipment.Order) error,
) (mergeOutcome, error) {
	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, orderID)
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		o, err = shipment.NewOrder(orderID)
		created = true
	}
	if err != nil {
		return mergeOutcome{}, err
	}

	before := o.State()
	if err = fn(o); err != nil {
		return mergeOutcome{}, err
	}

	outcome := mergeOutcome{
		Order:   o,
		Before:  before,
		Created: created,
		Fields:  shipment.ChangedFields(before, o.State()),
	}
	if outcome.Changed() {
		if err = repo.Save(ctx, o); err != nil {
			return mergeOutcome{}, err
		}
	}
	return outcome, nil
}
