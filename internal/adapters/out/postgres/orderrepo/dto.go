// Package orderrepo persists the local order mirror with GORM.
// Domain aggregates are converted to OrderDTO rows; tracking is stored as a
// JSON document alongside the shipment linkage columns.
package orderrepo

import (
	"time"

	"shipments/internal/core/domain/model/shipment"
)

// OrderDTO is one mirrored order. Status is stored by name so rows stay
// readable and survive reordering of the status enum.
type OrderDTO struct {
	ID            string `gorm:"primaryKey"`
	ShipmentID    string `gorm:"index"`
	AWBNumber     string `gorm:"column:awb_number;index"`
	Courier       string
	InvoiceURL    string
	Status        string       `gorm:"index"`
	PaymentStatus string       `gorm:"index"`
	PaymentAmount float64      `gorm:"type:numeric(12,2)"`
	Tracking      *TrackingDTO `gorm:"type:jsonb;serializer:json"`
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// TrackingDTO is the JSON shape of the tracking column.
type TrackingDTO struct {
	AWB                  string             `json:"awb,omitempty"`
	CourierName          string             `json:"courierName,omitempty"`
	CurrentStatus        string             `json:"currentStatus,omitempty"`
	CurrentLocation      string             `json:"currentLocation,omitempty"`
	ShippedDate          *time.Time         `json:"shippedDate,omitempty"`
	ExpectedDeliveryDate *time.Time         `json:"expectedDeliveryDate,omitempty"`
	Events               []TrackingEventDTO `json:"events,omitempty"`
}

type TrackingEventDTO struct {
	Status   string     `json:"status,omitempty"`
	Location string     `json:"location,omitempty"`
	Activity string     `json:"activity,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

func fromDomain(o *shipment.Order) OrderDTO {
	st := o.State()
	dto := OrderDTO{
		ID:            st.ID,
		ShipmentID:    st.ShipmentID,
		AWBNumber:     st.AWBNumber,
		Courier:       st.Courier,
		InvoiceURL:    st.InvoiceURL,
		Status:        st.Status.String(),
		PaymentStatus: string(st.Payment.Status),
		PaymentAmount: st.Payment.Amount,
	}
	if t := st.Tracking; t != nil {
		dto.Tracking = &TrackingDTO{
			AWB:                  t.AWB,
			CourierName:          t.CourierName,
			CurrentStatus:        t.CurrentStatus,
			CurrentLocation:      t.CurrentLocation,
			ShippedDate:          t.ShippedDate,
			ExpectedDeliveryDate: t.ExpectedDeliveryDate,
		}
		for _, e := range t.Events {
			dto.Tracking.Events = append(dto.Tracking.Events, TrackingEventDTO(e))
		}
	}
	return dto
}

func toDomain(dto OrderDTO) (*shipment.Order, error) {
	st := shipment.State{
		ID:         dto.ID,
		ShipmentID: dto.ShipmentID,
		AWBNumber:  dto.AWBNumber,
		Courier:    dto.Courier,
		InvoiceURL: dto.InvoiceURL,
		Status:     shipment.StatusFromName(dto.Status),
		Payment: shipment.Payment{
			Status: shipment.PaymentStatus(dto.PaymentStatus),
			Amount: dto.PaymentAmount,
		},
	}
	if t := dto.Tracking; t != nil {
		st.Tracking = &shipment.Tracking{
			AWB:                  t.AWB,
			CourierName:          t.CourierName,
			CurrentStatus:        t.CurrentStatus,
			CurrentLocation:      t.CurrentLocation,
			ShippedDate:          t.ShippedDate,
			ExpectedDeliveryDate: t.ExpectedDeliveryDate,
		}
		for _, e := range t.Events {
			st.Tracking.Events = append(st.Tracking.Events, shipment.TrackingEvent(e))
		}
	}
	return shipment.RestoreOrder(st)
}
