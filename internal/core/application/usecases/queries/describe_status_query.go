package queries

import (
	"context"
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrDescribeStatusQueryIsNotConstructed = errors.New(
	"DescribeStatusQuery must be created via NewDescribeStatusQuery constructor",
)

// DescribeStatusQuery renders the status dialog for an order. Selected is the
// status the operator is considering; Unknown means none yet.
type DescribeStatusQuery struct {
	orderID  string
	selected shipment.Status

	guard guard.ConstructorGuard
}

func NewDescribeStatusQuery(orderID, selected string) (DescribeStatusQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return DescribeStatusQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	var sel shipment.Status
	if strings.TrimSpace(selected) != "" {
		s, err := shipment.ParseStatus(selected)
		if err != nil {
			return DescribeStatusQuery{}, err
		}
		sel = s
	}

	return DescribeStatusQuery{orderID: orderID, selected: sel, guard: guard.NewConstructorGuard()}, nil
}

func (q DescribeStatusQuery) Validate() error {
	return q.guard.Validate(ErrDescribeStatusQueryIsNotConstructed)
}

// StatusDescription is everything the status dialog needs.
type StatusDescription struct {
	OrderID        string
	Current        shipment.Badge
	Steps          []shipment.Step
	AllowedTargets []shipment.Status
	Actions        []shipment.Action
	Window         *shipment.DeliveryWindow

	// SelectionError is set when the selected status would be rejected.
	SelectionError string
}

type DescribeStatusQueryHandler struct {
	orders OrderReader
	policy shipment.Policy
}

func NewDescribeStatusQueryHandler(orders OrderReader, policy shipment.Policy) DescribeStatusQueryHandler {
	return DescribeStatusQueryHandler{orders: orders, policy: policy}
}

func (h DescribeStatusQueryHandler) Handle(ctx context.Context, query DescribeStatusQuery) (StatusDescription, error) {
	if err := query.Validate(); err != nil {
		return StatusDescription{}, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return StatusDescription{}, err
	}

	// The dialog works on the stored status, the one transitions are checked
	// against, not on the carrier's live wording.
	current := o.Status()
	selected := query.selected
	if selected == shipment.Unknown {
		selected = current
	}

	desc := StatusDescription{
		OrderID:        o.ID(),
		Current:        shipment.BadgeFor(current),
		Steps:          shipment.ProgressSteps(current, selected),
		AllowedTargets: shipment.AllowedTargets(o.Status(), h.policy),
		Actions:        o.AllowedActions(),
		Window:         windowOf(o),
	}
	if query.selected != shipment.Unknown {
		if err := shipment.ValidateTransition(o.Status(), query.selected, h.policy); err != nil {
			desc.SelectionError = errs.UserMessage(err, err.Error())
		}
	}
	return desc, nil
}
