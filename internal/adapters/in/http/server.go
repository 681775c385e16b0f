package http

import (
	"net/http"
	"strings"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements servers.ServerInterface on top of the shipment use cases.
type Server struct {
	// Command handlers
	syncStatusHandler     commands.SyncStatusCommandHandler
	updateStatusHandler   commands.UpdateStatusCommandHandler
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateTrackingHandler commands.UpdateTrackingInfoCommandHandler
	requestReturnHandler  commands.RequestReturnCommandHandler

	// Query handlers
	trackOrderHandler      queries.TrackOrderQueryHandler
	trackByAWBHandler      queries.TrackByAWBQueryHandler
	couriersHandler        queries.GetAvailableCouriersQueryHandler
	pickupLocationsHandler queries.ListPickupLocationsQueryHandler
	listShipmentsHandler   queries.ListShipmentsQueryHandler
	describeStatusHandler  queries.DescribeStatusQueryHandler
	syncHistoryHandler     queries.GetSyncHistoryQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups everything the server dispatches to.
type Handlers struct {
	SyncStatus     commands.SyncStatusCommandHandler
	UpdateStatus   commands.UpdateStatusCommandHandler
	CreateShipment commands.CreateShipmentCommandHandler
	UpdateTracking commands.UpdateTrackingInfoCommandHandler
	RequestReturn  commands.RequestReturnCommandHandler

	TrackOrder      queries.TrackOrderQueryHandler
	TrackByAWB      queries.TrackByAWBQueryHandler
	Couriers        queries.GetAvailableCouriersQueryHandler
	PickupLocations queries.ListPickupLocationsQueryHandler
	ListShipments   queries.ListShipmentsQueryHandler
	DescribeStatus  queries.DescribeStatusQueryHandler
	SyncHistory     queries.GetSyncHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		syncStatusHandler:      h.SyncStatus,
		updateStatusHandler:    h.UpdateStatus,
		createShipmentHandler:  h.CreateShipment,
		updateTrackingHandler:  h.UpdateTracking,
		requestReturnHandler:   h.RequestReturn,
		trackOrderHandler:      h.TrackOrder,
		trackByAWBHandler:      h.TrackByAWB,
		couriersHandler:        h.Couriers,
		pickupLocationsHandler: h.PickupLocations,
		listShipmentsHandler:   h.ListShipments,
		describeStatusHandler:  h.DescribeStatus,
		syncHistoryHandler:     h.SyncHistory,
	}
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	var search, view string
	if params.Search != nil {
		search = *params.Search
	}
	if params.View != nil {
		view = string(*params.View)
	}

	query, err := queries.NewListShipmentsQuery(search, view)
	if err != nil {
		return respondError(ctx, err, "Invalid shipment filter")
	}

	rows, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to list shipments")
	}

	response := servers.ShipmentsResponse{
		Success:   true,
		Message:   "Shipments retrieved",
		Shipments: make([]servers.ShipmentSummary, len(rows)),
	}
	for i, row := range rows {
		response.Shipments[i] = servers.ShipmentSummary{
			Order:   toOrder(row.Order),
			Badge:   toBadge(row.Badge),
			Phase:   row.Phase.String(),
			Actions: toActions(row.Actions),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments/{orderId}.
func (s *Server) CreateShipment(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCreateShipmentCommand(orderID)
	if err != nil {
		return respondError(ctx, err, "Invalid order")
	}

	res, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to create shipment")
	}

	order := toOrder(res.Order)
	return ctx.JSON(http.StatusCreated, servers.CreateShipmentResponse{
		Success:     true,
		Message:     res.Message,
		Order:       &order,
		ShipmentId:  optional(res.Shipment.ShipmentID),
		AwbNumber:   optional(res.Shipment.AWBNumber),
		CourierName: optional(res.Shipment.CourierName),
		InvoiceUrl:  optional(res.InvoiceURL),
	})
}

// DescribeStatus handles GET /api/v1/shipments/{orderId}/status.
func (s *Server) DescribeStatus(ctx echo.Context, orderID servers.OrderId, params servers.DescribeStatusParams) error {
	var selected string
	if params.Selected != nil {
		selected = *params.Selected
	}

	query, err := queries.NewDescribeStatusQuery(orderID, selected)
	if err != nil {
		return respondError(ctx, err, "Invalid status")
	}

	desc, err := s.describeStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to describe order status")
	}

	response := servers.StatusDescriptionResponse{
		Success:        true,
		Message:        "Status described",
		OrderId:        desc.OrderID,
		Current:        toBadge(desc.Current),
		Steps:          make([]servers.Step, len(desc.Steps)),
		AllowedTargets: toStatusNames(desc.AllowedTargets),
		Actions:        toActions(desc.Actions),
		Window:         toWindow(desc.Window),
		SelectionError: optional(desc.SelectionError),
	}
	for i, step := range desc.Steps {
		response.Steps[i] = servers.Step{
			Status:   step.Status.String(),
			Passed:   step.Passed,
			Selected: step.Selected,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/v1/shipments/{orderId}/status.
func (s *Server) UpdateStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	status, err := shipment.ParseStatus(body.Status)
	if err != nil {
		return respondError(ctx, err, "Invalid status")
	}
	cmd, err := commands.NewUpdateStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err, "Invalid status update")
	}

	res, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, orderResponse(res, "Status updated successfully"))
}

// SyncStatus handles POST /api/v1/shipments/{orderId}/sync.
func (s *Server) SyncStatus(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewSyncStatusCommand(orderID)
	if err != nil {
		return respondError(ctx, err, "Invalid order")
	}

	res, err := s.syncStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to sync order status")
	}

	message := res.Message
	if message == "" {
		message = "Order status synced"
	}
	order := toOrder(res.Order)
	response := servers.SyncResponse{
		Success:       true,
		Message:       message,
		StatusUpdated: res.StatusUpdated,
		Changed:       res.Changed,
		Order:         &order,
		Tracking:      toTracking(res.Tracking),
	}
	if len(res.ChangedFields) > 0 {
		fields := append([]string(nil), res.ChangedFields...)
		response.ChangedFields = &fields
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSyncHistory handles GET /api/v1/shipments/{orderId}/sync-history.
func (s *Server) GetSyncHistory(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetSyncHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err, "Invalid order")
	}

	records, err := s.syncHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to read sync history")
	}

	response := servers.SyncHistoryResponse{
		Success: true,
		Message: "Sync history retrieved",
		OrderId: query.OrderID(),
		History: make([]servers.SyncRecord, len(records)),
	}
	for i, r := range records {
		response.History[i] = toSyncRecord(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/shipments/{orderId}/tracking. A backend
// failure is still a 200 carrying success=false and the local record.
func (s *Server) TrackOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err, "Invalid order")
	}

	res, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to track order")
	}

	response := servers.TrackingResponse{
		Success:  res.Success,
		Message:  res.Message,
		Fallback: res.Fallback,
		Tracking: toTracking(res.Tracking),
		Window:   toWindow(res.Window),
	}
	if res.Order != nil {
		order := toOrder(res.Order)
		response.Order = &order
		badge := toBadge(res.Badge)
		response.Badge = &badge
	}
	if res.Err != nil {
		response.Error = optional(res.Err.Error())
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateTrackingInfo handles PATCH /api/v1/shipments/{orderId}/tracking.
func (s *Server) UpdateTrackingInfo(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateTrackingInfoJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	update := ports.TrackingUpdate{
		AWBNumber:  value(body.AwbNumber),
		ShipmentID: value(body.ShipmentId),
		Courier:    value(body.Courier),
	}
	if raw := strings.TrimSpace(value(body.Status)); raw != "" {
		status, err := shipment.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err, "Invalid status")
		}
		update.Status = status
	}

	cmd, err := commands.NewUpdateTrackingInfoCommand(orderID, update)
	if err != nil {
		return respondError(ctx, err, "Invalid tracking update")
	}

	res, err := s.updateTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to update tracking info")
	}

	return ctx.JSON(http.StatusOK, orderResponse(res, "Tracking info updated successfully"))
}

// RequestReturn handles POST /api/v1/shipments/{orderId}/return.
func (s *Server) RequestReturn(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.RequestReturnJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondMessage(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, body.Reason)
	if err != nil {
		return respondError(ctx, err, "Invalid return request")
	}

	res, err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, "Failed to request return")
	}

	return ctx.JSON(http.StatusOK, orderResponse(res, "Return requested successfully"))
}

// TrackByAWB handles GET /api/v1/tracking/awb/{awb}.
func (s *Server) TrackByAWB(ctx echo.Context, awb string) error {
	query, err := queries.NewTrackByAWBQuery(awb)
	if err != nil {
		return respondError(ctx, err, "Invalid AWB")
	}

	res, err := s.trackByAWBHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to track shipment")
	}

	tracking := res.Tracking
	response := servers.AWBTrackingResponse{
		Success:  true,
		Message:  "Tracking retrieved",
		Status:   res.Status.String(),
		Badge:    toBadge(res.Badge),
		Tracking: toTracking(&tracking),
	}
	if res.Order != nil {
		response.Order = snapshotToOrder(*res.Order)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context, params servers.GetCouriersParams) error {
	cod := params.Cod != nil && *params.Cod
	query, err := queries.NewGetAvailableCouriersQuery(
		params.PickupPostcode, params.DeliveryPostcode, float64(params.Weight), cod,
	)
	if err != nil {
		return respondError(ctx, err, "Invalid courier query")
	}

	options, err := s.couriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err, "Failed to get available couriers")
	}

	response := servers.CouriersResponse{
		Success:  true,
		Message:  "Couriers retrieved",
		Couriers: make([]servers.Courier, len(options)),
	}
	for i, o := range options {
		response.Couriers[i] = toCourier(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPickupLocations handles GET /api/v1/pickup-locations.
func (s *Server) GetPickupLocations(ctx echo.Context) error {
	locations, err := s.pickupLocationsHandler.Handle(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err, "Failed to get pickup locations")
	}

	response := servers.PickupLocationsResponse{
		Success:         true,
		Message:         "Pickup locations retrieved",
		PickupLocations: make([]servers.PickupLocation, len(locations)),
	}
	for i, l := range locations {
		response.PickupLocations[i] = toPickupLocation(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context) error {
	all := shipment.AllStatuses()
	response := servers.StatusesResponse{
		Success:     true,
		Message:     "Statuses retrieved",
		Progression: toStatusNames(shipment.Progression()),
		Special:     toStatusNames(shipment.SpecialStatuses()),
		Badges:      make([]servers.Badge, len(all)),
	}
	for i, st := range all {
		response.Badges[i] = toBadge(shipment.BadgeFor(st))
	}
	return ctx.JSON(http.StatusOK, response)
}

func orderResponse(res commands.UpdateStatusResult, message string) servers.OrderResponse {
	response := servers.OrderResponse{
		Success: true,
		Message: message,
		Changed: res.Changed,
	}
	if res.Order != nil {
		order := toOrder(res.Order)
		response.Order = &order
	}
	return response
}
