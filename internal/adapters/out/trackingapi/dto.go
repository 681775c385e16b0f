package trackingapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

const wireVersionV1 = "v1"

// envelopeV1 is the part every backend response shares. Version is optional;
// when sent it must be v1.
type envelopeV1 struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Version string `json:"version"`
}

func (e envelopeV1) checkVersion() error {
	v := strings.ToLower(strings.TrimSpace(e.Version))
	if v == "" || v == wireVersionV1 {
		return nil
	}
	return errs.NewVersionIsInvalidError("version", fmt.Errorf("unsupported response version %q", e.Version))
}

// wireTime accepts the date formats the carrier backends send. Empty strings
// and null decode to nil.
type wireTime struct {
	t *time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02 Jan 2006",
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		w.t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		w.t = nil
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			w.t = &t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

type trackingEventV1 struct {
	Status   string   `json:"status"`
	Location string   `json:"location"`
	Activity string   `json:"activity"`
	Date     wireTime `json:"date"`
}

type trackingV1 struct {
	AWB                   string            `json:"awb"`
	CourierName           string            `json:"courier_name"`
	CurrentStatus         string            `json:"current_status"`
	CurrentLocation       string            `json:"current_location"`
	CurrentStatusLocation string            `json:"current_status_location"`
	ShippedDate           wireTime          `json:"shipped_date"`
	ExpectedDeliveryDate  wireTime          `json:"expected_delivery_date"`
	TrackingData          []trackingEventV1 `json:"tracking_data"`
}

type paymentInfoV1 struct {
	Status string `json:"status"`
}

type orderV1 struct {
	MongoID        string         `json:"_id"`
	OrderID        string         `json:"orderId"`
	ShipmentID     string         `json:"shipmentId"`
	AWBNumber      string         `json:"awbNumber"`
	Courier        string         `json:"courier"`
	InvoiceURL     string         `json:"invoiceUrl"`
	ShipmentStatus string         `json:"shipmentStatus"`
	PaymentInfo    *paymentInfoV1 `json:"paymentInfo"`
	TotalAmount    *float64       `json:"totalAmount"`
}

type shipmentV1 struct {
	ShipmentID  flexString `json:"shipment_id"`
	AWBCode     string     `json:"awb_code"`
	CourierName string     `json:"courier_name"`
	InvoiceURL  string     `json:"invoice_url"`
	Message     string     `json:"message"`
}

type courierV1 struct {
	ID            int      `json:"courier_company_id"`
	Name          string   `json:"courier_name"`
	Rate          float64  `json:"rate"`
	EstimatedDays flexInt  `json:"estimated_delivery_days"`
	ETD           string   `json:"etd"`
	COD           flexBool `json:"cod"`
	Rating        float64  `json:"rating"`
}

type pickupLocationV1 struct {
	Name     string     `json:"pickup_location"`
	Address  string     `json:"address"`
	City     string     `json:"city"`
	State    string     `json:"state"`
	Postcode flexString `json:"pin_code"`
	Phone    string     `json:"phone"`
	Primary  flexBool   `json:"is_primary_location"`
}

type trackResponseV1 struct {
	Tracking     *trackingV1 `json:"tracking"`
	OrderDetails *orderV1    `json:"orderDetails"`
}

type createResponseV1 struct {
	Shipment *shipmentV1 `json:"shipment"`
	Message  string      `json:"message"`
}

type orderResponseV1 struct {
	Order *orderV1 `json:"order"`
}

type syncResponseV1 struct {
	Order         *orderV1    `json:"order"`
	Tracking      *trackingV1 `json:"tracking"`
	StatusUpdated bool        `json:"statusUpdated"`
	Message       string      `json:"message"`
}

type couriersResponseV1 struct {
	Couriers []courierV1 `json:"couriers"`
}

type pickupResponseV1 struct {
	PickupLocations []pickupLocationV1 `json:"pickupLocations"`
}

// updateRequestV1 omits fields the caller did not set.
type updateRequestV1 struct {
	AWBNumber      string `json:"awbNumber,omitempty"`
	ShipmentID     string `json:"shipmentId,omitempty"`
	Courier        string `json:"courier,omitempty"`
	ShipmentStatus string `json:"shipmentStatus,omitempty"`
}

type returnRequestV1 struct {
	Reason string `json:"reason"`
}

// flexString decodes either a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt decodes a number or a numeric string; anything else is zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

// flexBool decodes true/false, 0/1 and their string forms.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := strconv.ParseBool(strings.TrimSpace(string(s)))
	if err != nil {
		*f = false
		return nil
	}
	*f = flexBool(v)
	return nil
}

func (t *trackingV1) toDomain() *shipment.Tracking {
	if t == nil {
		return nil
	}
	location := t.CurrentLocation
	if location == "" {
		location = t.CurrentStatusLocation
	}
	out := &shipment.Tracking{
		AWB:                  strings.TrimSpace(t.AWB),
		CourierName:          t.CourierName,
		CurrentStatus:        t.CurrentStatus,
		CurrentLocation:      location,
		ShippedDate:          t.ShippedDate.t,
		ExpectedDeliveryDate: t.ExpectedDeliveryDate.t,
	}
	for _, e := range t.TrackingData {
		out.Events = append(out.Events, shipment.TrackingEvent{
			Status:   e.Status,
			Location: e.Location,
			Activity: e.Activity,
			Date:     e.Date.t,
		})
	}
	return out
}

func (o *orderV1) toDomain() *shipment.OrderSnapshot {
	if o == nil {
		return nil
	}
	id := o.MongoID
	if id == "" {
		id = o.OrderID
	}
	snap := &shipment.OrderSnapshot{
		ID:         id,
		ShipmentID: o.ShipmentID,
		AWBNumber:  o.AWBNumber,
		Courier:    o.Courier,
		InvoiceURL: o.InvoiceURL,
		Status:     o.ShipmentStatus,
	}
	if o.PaymentInfo != nil || o.TotalAmount != nil {
		p := shipment.Payment{}
		if o.PaymentInfo != nil {
			p.Status = shipment.PaymentStatus(o.PaymentInfo.Status)
		}
		if o.TotalAmount != nil {
			p.Amount = *o.TotalAmount
		}
		snap.Payment = &p
	}
	return snap
}

func (s *shipmentV1) toDomain(fallbackMessage string) ports.Shipment {
	if s == nil {
		return ports.Shipment{Message: fallbackMessage}
	}
	msg := s.Message
	if msg == "" {
		msg = fallbackMessage
	}
	return ports.Shipment{
		ShipmentID:  string(s.ShipmentID),
		AWBNumber:   s.AWBCode,
		CourierName: s.CourierName,
		InvoiceURL:  s.InvoiceURL,
		Message:     msg,
	}
}

func (c courierV1) toDomain() ports.CourierOption {
	return ports.CourierOption{
		ID:            c.ID,
		Name:          c.Name,
		Rate:          c.Rate,
		EstimatedDays: int(c.EstimatedDays),
		ETD:           c.ETD,
		COD:           bool(c.COD),
		Rating:        c.Rating,
	}
}

func (p pickupLocationV1) toDomain() ports.PickupLocation {
	return ports.PickupLocation{
		Name:     p.Name,
		Address:  p.Address,
		City:     p.City,
		State:    p.State,
		Postcode: string(p.Postcode),
		Phone:    p.Phone,
		Primary:  bool(p.Primary),
	}
}

func toUpdateRequest(u ports.TrackingUpdate) updateRequestV1 {
	req := updateRequestV1{
		AWBNumber:  u.AWBNumber,
		ShipmentID: u.ShipmentID,
		Courier:    u.Courier,
	}
	if u.Status != shipment.Unknown {
		req.ShipmentStatus = u.Status.String()
	}
	return req
}
