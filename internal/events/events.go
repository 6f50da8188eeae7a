package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shareit-app/shareit/internal/domain/booking"
)

// TopicBookingEvents is the Kafka topic carrying booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Booking lifecycle event types.
const (
	BookingCreated  = "booking.created"
	BookingApproved = "booking.approved"
	BookingRejected = "booking.rejected"
)

// CloudEvent is the envelope for every published event.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps the payload in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent from its wire form.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into out.
func (ce CloudEvent) ParseData(out interface{}) error {
	return json.Unmarshal(ce.Data, out)
}

// BookingEvent is the payload for all booking lifecycle events.
type BookingEvent struct {
	BookingID  int64          `json:"bookingId"`
	ItemID     int64          `json:"itemId"`
	BookerID   int64          `json:"bookerId"`
	Status     booking.Status `json:"status"`
	Start      time.Time      `json:"start"`
	End        time.Time      `json:"end"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewBookingEvent builds the payload from a booking aggregate.
func NewBookingEvent(b *booking.Booking) BookingEvent {
	return BookingEvent{
		BookingID:  b.ID(),
		ItemID:     b.ItemID(),
		BookerID:   b.BookerID(),
		Status:     b.Status(),
		Start:      b.Start(),
		End:        b.End(),
		OccurredAt: time.Now().UTC(),
	}
}
