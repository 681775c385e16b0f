package http

import (
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/generated/servers"
)

func toOrder(o *shipment.Order) servers.Order {
	if o == nil {
		return servers.Order{}
	}
	out := servers.Order{
		Id:             o.ID(),
		ShipmentId:     optional(o.ShipmentID()),
		AwbNumber:      optional(o.AWBNumber()),
		Courier:        optional(o.Courier()),
		InvoiceUrl:     optional(o.InvoiceURL()),
		ShipmentStatus: o.Status().String(),
		PaymentStatus:  optional(string(o.Payment().Status)),
	}
	if amount := o.Payment().Amount; amount != 0 {
		v := float32(amount)
		out.TotalAmount = &v
	}
	return out
}

func snapshotToOrder(s shipment.OrderSnapshot) *servers.Order {
	out := &servers.Order{
		Id:             s.ID,
		ShipmentId:     optional(s.ShipmentID),
		AwbNumber:      optional(s.AWBNumber),
		Courier:        optional(s.Courier),
		InvoiceUrl:     optional(s.InvoiceURL),
		ShipmentStatus: shipment.StatusFromName(s.Status).String(),
	}
	if s.Payment != nil {
		out.PaymentStatus = optional(string(s.Payment.Status))
		if s.Payment.Amount != 0 {
			v := float32(s.Payment.Amount)
			out.TotalAmount = &v
		}
	}
	return out
}

func toSyncRecord(r ports.SyncRecord) servers.SyncRecord {
	return servers.SyncRecord{
		Id:            r.ID.String(),
		StatusBefore:  r.StatusBefore.String(),
		StatusAfter:   r.StatusAfter.String(),
		StatusUpdated: r.StatusUpdated,
		ChangedFields: append([]string{}, r.ChangedFields...),
		Message:       optional(r.Message),
		SyncedAt:      r.SyncedAt,
	}
}

func toBadge(b shipment.Badge) servers.Badge {
	return servers.Badge{
		Status:  b.Status.String(),
		Label:   b.Label,
		Icon:    string(b.Icon),
		Percent: b.Percent,
		Tone:    string(b.Tone),
	}
}

func toTracking(t *shipment.Tracking) *servers.Tracking {
	if t == nil {
		return nil
	}
	out := &servers.Tracking{
		Awb:                  optional(t.AWB),
		CourierName:          optional(t.CourierName),
		CurrentStatus:        optional(t.CurrentStatus),
		CurrentLocation:      optional(t.CurrentLocation),
		ShippedDate:          t.ShippedDate,
		ExpectedDeliveryDate: t.ExpectedDeliveryDate,
	}
	if len(t.Events) > 0 {
		events := make([]servers.TrackingEvent, len(t.Events))
		for i, e := range t.Events {
			events[i] = servers.TrackingEvent{
				Status:   e.Status,
				Location: optional(e.Location),
				Activity: optional(e.Activity),
				Date:     e.Date,
			}
		}
		out.Events = &events
	}
	return out
}

func toWindow(w *shipment.DeliveryWindow) *servers.DeliveryWindow {
	if w == nil {
		return nil
	}
	return &servers.DeliveryWindow{Earliest: w.Earliest, Latest: w.Latest}
}

func toCourier(o ports.CourierOption) servers.Courier {
	out := servers.Courier{
		Id:   o.ID,
		Name: o.Name,
		Rate: float32(o.Rate),
		Cod:  o.COD,
		Etd:  optional(o.ETD),
	}
	if o.EstimatedDays > 0 {
		days := o.EstimatedDays
		out.EstimatedDays = &days
	}
	if o.Rating > 0 {
		rating := float32(o.Rating)
		out.Rating = &rating
	}
	return out
}

func toPickupLocation(l ports.PickupLocation) servers.PickupLocation {
	return servers.PickupLocation{
		Name:     l.Name,
		Address:  optional(l.Address),
		City:     optional(l.City),
		State:    optional(l.State),
		Postcode: optional(l.Postcode),
		Phone:    optional(l.Phone),
		Primary:  l.Primary,
	}
}

func toStatusNames(statuses []shipment.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}

func toActions(actions []shipment.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

// optional maps "" to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
