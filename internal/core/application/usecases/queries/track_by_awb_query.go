package queries

import (
	"context"
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrTrackByAWBQueryIsNotConstructed = errors.New(
	"TrackByAWBQuery must be created via NewTrackByAWBQuery constructor",
)

// TrackByAWBQuery looks a parcel up by its air waybill number.
type TrackByAWBQuery struct {
	awb string

	guard guard.ConstructorGuard
}

func NewTrackByAWBQuery(awb string) (TrackByAWBQuery, error) {
	awb = strings.TrimSpace(awb)
	if awb == "" {
		return TrackByAWBQuery{}, errs.NewValueIsRequiredError("awb")
	}
	return TrackByAWBQuery{awb: awb, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackByAWBQuery) Validate() error {
	return q.guard.Validate(ErrTrackByAWBQueryIsNotConstructed)
}

func (q TrackByAWBQuery) AWB() string {
	return q.awb
}

// TrackByAWBResponse is the carrier tracking for a waybill.
type TrackByAWBResponse struct {
	Tracking shipment.Tracking
	Order    *shipment.OrderSnapshot
	Status   shipment.Status
	Badge    shipment.Badge
}

type TrackByAWBQueryHandler struct {
	provider ports.TrackingProvider
}

func NewTrackByAWBQueryHandler(provider ports.TrackingProvider) TrackByAWBQueryHandler {
	return TrackByAWBQueryHandler{provider: provider}
}

func (h TrackByAWBQueryHandler) Handle(ctx context.Context, query TrackByAWBQuery) (TrackByAWBResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackByAWBResponse{}, err
	}

	res, err := h.provider.TrackByAWB(ctx, query.AWB())
	if err != nil {
		return TrackByAWBResponse{}, err
	}

	resp := TrackByAWBResponse{Order: res.Order}
	if res.Tracking != nil {
		resp.Tracking = *res.Tracking
	}
	if resp.Tracking.AWB == "" {
		resp.Tracking.AWB = query.AWB()
	}

	resp.Status = resp.Tracking.Status()
	if resp.Status == shipment.Unknown && res.Order != nil {
		resp.Status = shipment.StatusFromName(res.Order.Status)
	}
	resp.Badge = shipment.BadgeFor(resp.Status)
	return resp, nil
}
