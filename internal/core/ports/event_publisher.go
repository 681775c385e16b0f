package ports

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// StatusChangeSource says what moved the status.
type StatusChangeSource string

const (
	SourceSync   StatusChangeSource = "sync"
	SourceManual StatusChangeSource = "manual"
	SourceReturn StatusChangeSource = "return"
)

// StatusChangedEvent is emitted when the local record of an order changed.
type StatusChangedEvent struct {
	EventID    uuid.UUID
	OrderID    string
	From       shipment.Status
	To         shipment.Status
	AWBNumber  string
	Source     StatusChangeSource
	OccurredAt time.Time
}

// NewStatusChangedEvent stamps an event with a fresh id and the current time.
func NewStatusChangedEvent(orderID string, from, to shipment.Status, awb string, source StatusChangeSource) StatusChangedEvent {
	return StatusChangedEvent{
		EventID:    uuid.New(),
		OrderID:    orderID,
		From:       from,
		To:         to,
		AWBNumber:  awb,
		Source:     source,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher delivers status change events to observers.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
