package queries

import (
	"context"
	"errors"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

const trackOrderFallbackMessage = "Failed to track order"

// TrackOrderResponse is what the tracking view renders.
//
// When the backend fails, Success is false, Message explains why and Order
// holds the locally mirrored record (if any) so the view can still show the
// basic order fields. Err keeps the underlying failure for logging.
type TrackOrderResponse struct {
	Success  bool
	Message  string
	Order    *shipment.Order
	Tracking *shipment.Tracking
	Badge    shipment.Badge
	Window   *shipment.DeliveryWindow
	Fallback bool
	Err      error
}

// TrackOrderQueryHandler combines the backend's live tracking with the local
// mirror. The mirror is only read.
type TrackOrderQueryHandler struct {
	provider ports.TrackingProvider
	orders   OrderReader
}

func NewTrackOrderQueryHandler(provider ports.TrackingProvider, orders OrderReader) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{provider: provider, orders: orders}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	local, err := h.orders.Get(ctx, query.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return TrackOrderResponse{}, err
	}

	remote, remoteErr := h.provider.TrackByOrderID(ctx, query.OrderID())
	if remoteErr != nil {
		resp := TrackOrderResponse{
			Success:  false,
			Message:  errs.UserMessage(remoteErr, trackOrderFallbackMessage),
			Order:    local,
			Fallback: local != nil,
			Err:      remoteErr,
		}
		if local != nil {
			resp.Badge = shipment.BadgeFor(local.DisplayStatus())
			resp.Tracking = local.Tracking()
			resp.Window = windowOf(local)
		}
		return resp, nil
	}

	view := local
	if view == nil {
		if view, err = shipment.NewOrder(query.OrderID()); err != nil {
			return TrackOrderResponse{}, err
		}
	}
	if remote.Order != nil {
		view.ApplySnapshot(*remote.Order)
	}
	if remote.Tracking != nil {
		if _, err = view.ApplyTracking(*remote.Tracking); err != nil {
			return TrackOrderResponse{}, err
		}
	}

	return TrackOrderResponse{
		Success:  true,
		Order:    view,
		Tracking: view.Tracking(),
		Badge:    shipment.BadgeFor(view.DisplayStatus()),
		Window:   windowOf(view),
	}, nil
}

func windowOf(o *shipment.Order) *shipment.DeliveryWindow {
	w, ok := o.EstimatedDelivery()
	if !ok {
		return nil
	}
	return &w
}
