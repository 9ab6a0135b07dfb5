package contracts

import (
	"context"
	"time"
)

// BookingEvent is published to the events queue after a booking reaches a
// terminal state. Delivery is fire-and-forget from the settlement's point
// of view.
type BookingEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	StaffID    string    `json:"staff_id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
