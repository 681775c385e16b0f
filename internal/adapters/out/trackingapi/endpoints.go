package trackingapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

const shipmentCreatedMessage = "Shipment created successfully"

func (c *Client) CreateShipment(ctx context.Context, orderID string) (ports.Shipment, error) {
	if err := requireID("orderID", orderID); err != nil {
		return ports.Shipment{}, err
	}
	var resp createResponseV1
	if err := c.do(ctx, opCreateShipment, http.MethodPost, "/create/"+url.PathEscape(orderID), nil, nil, &resp); err != nil {
		return ports.Shipment{}, err
	}
	msg := resp.Message
	if msg == "" {
		msg = shipmentCreatedMessage
	}
	return resp.Shipment.toDomain(msg), nil
}

func (c *Client) TrackByOrderID(ctx context.Context, orderID string) (ports.TrackResult, error) {
	if err := requireID("orderID", orderID); err != nil {
		return ports.TrackResult{}, err
	}
	return c.track(ctx, url.Values{"orderId": {orderID}})
}

func (c *Client) TrackByAWB(ctx context.Context, awb string) (ports.TrackResult, error) {
	if err := requireID("awb", awb); err != nil {
		return ports.TrackResult{}, err
	}
	return c.track(ctx, url.Values{"awb": {awb}})
}

func (c *Client) track(ctx context.Context, query url.Values) (ports.TrackResult, error) {
	var resp trackResponseV1
	if err := c.do(ctx, opTrack, http.MethodGet, "/track", query, nil, &resp); err != nil {
		return ports.TrackResult{}, err
	}
	return ports.TrackResult{
		Tracking: resp.Tracking.toDomain(),
		Order:    resp.OrderDetails.toDomain(),
	}, nil
}

// UpdateTrackingInfo sends only the fields set in update. A response without
// an order is accepted; the returned snapshot is then empty.
func (c *Client) UpdateTrackingInfo(
	ctx context.Context, orderID string, update ports.TrackingUpdate,
) (shipment.OrderSnapshot, error) {
	if err := requireID("orderID", orderID); err != nil {
		return shipment.OrderSnapshot{}, err
	}
	if update.IsEmpty() {
		return shipment.OrderSnapshot{}, errs.NewValueIsRequiredError("tracking update")
	}

	var resp orderResponseV1
	path := "/update/" + url.PathEscape(orderID)
	if err := c.do(ctx, opUpdateTracking, http.MethodPut, path, nil, toUpdateRequest(update), &resp); err != nil {
		return shipment.OrderSnapshot{}, err
	}
	if resp.Order == nil {
		c.logger.WarnContext(ctx, "update response carried no order", "order_id", orderID)
		return shipment.OrderSnapshot{}, nil
	}
	return *resp.Order.toDomain(), nil
}

func (c *Client) SyncStatus(ctx context.Context, orderID string) (ports.SyncResult, error) {
	if err := requireID("orderID", orderID); err != nil {
		return ports.SyncResult{}, err
	}
	var resp syncResponseV1
	if err := c.do(ctx, opSyncStatus, http.MethodGet, "/sync-status/"+url.PathEscape(orderID), nil, nil, &resp); err != nil {
		return ports.SyncResult{}, err
	}
	return ports.SyncResult{
		Order:         resp.Order.toDomain(),
		Tracking:      resp.Tracking.toDomain(),
		StatusUpdated: resp.StatusUpdated,
		Message:       resp.Message,
	}, nil
}

func (c *Client) GetAvailableCouriers(ctx context.Context, query ports.CourierQuery) ([]ports.CourierOption, error) {
	params := url.Values{
		"pickup_postcode":   {query.PickupPostcode},
		"delivery_postcode": {query.DeliveryPostcode},
		"weight":            {strconv.FormatFloat(query.WeightKg, 'f', -1, 64)},
		"cod":               {strconv.FormatBool(query.COD)},
	}
	var resp couriersResponseV1
	if err := c.do(ctx, opCouriers, http.MethodGet, "/couriers", params, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]ports.CourierOption, 0, len(resp.Couriers))
	for _, courier := range resp.Couriers {
		out = append(out, courier.toDomain())
	}
	return out, nil
}

func (c *Client) GetPickupLocations(ctx context.Context) ([]ports.PickupLocation, error) {
	var resp pickupResponseV1
	if err := c.do(ctx, opPickup, http.MethodGet, "/pickup-locations", nil, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]ports.PickupLocation, 0, len(resp.PickupLocations))
	for _, loc := range resp.PickupLocations {
		out = append(out, loc.toDomain())
	}
	return out, nil
}

func (c *Client) RequestReturn(ctx context.Context, orderID, reason string) (shipment.OrderSnapshot, error) {
	if err := requireID("orderID", orderID); err != nil {
		return shipment.OrderSnapshot{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shipment.OrderSnapshot{}, errs.NewValueIsRequiredError("reason")
	}

	var resp orderResponseV1
	path := "/return/" + url.PathEscape(orderID)
	if err := c.do(ctx, opReturn, http.MethodPost, path, nil, returnRequestV1{Reason: reason}, &resp); err != nil {
		return shipment.OrderSnapshot{}, err
	}
	if resp.Order == nil {
		return shipment.OrderSnapshot{}, nil
	}
	return *resp.Order.toDomain(), nil
}

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
