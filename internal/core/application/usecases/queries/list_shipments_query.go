package queries

import (
	"context"
	"errors"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

type ListShipmentsQuery struct {
	filter shipment.ListFilter

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery builds a list query. An empty view means all orders.
func NewListShipmentsQuery(search, view string) (ListShipmentsQuery, error) {
	v, err := shipment.ParseView(view)
	if err != nil {
		return ListShipmentsQuery{}, err
	}
	return ListShipmentsQuery{
		filter: shipment.ListFilter{Search: search, View: v},
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Filter() shipment.ListFilter {
	return q.filter
}

// ShipmentSummary is one row of the shipment list.
type ShipmentSummary struct {
	Order   *shipment.Order
	Badge   shipment.Badge
	Phase   shipment.Phase
	Actions []shipment.Action
}

type ListShipmentsQueryHandler struct {
	orders OrderReader
}

func NewListShipmentsQueryHandler(orders OrderReader) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{orders: orders}
}

func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	out := make([]ShipmentSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, ShipmentSummary{
			Order:   o,
			Badge:   shipment.BadgeFor(o.DisplayStatus()),
			Phase:   o.Phase(),
			Actions: o.AllowedActions(),
		})
	}
	return out, nil
}
