package events

import (
	"context"
	"time"
)

const (
	TypeRecommendationServed = "RECOMMENDATION_SERVED"
	TypeSessionsSwept        = "SESSIONS_SWEPT"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RECOMMENDATION_SERVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher hands events to a bus. Implementations must not block the caller
// for long; delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Envelope converts any Event into its wire form.
func Envelope(e Event) BaseEvent {
	return BaseEvent{Type: e.EventType(), Data: e.Payload(), OccurredAt: e.Timestamp()}
}

// RecommendationServed records one answered suggestion request.
func RecommendationServed(sessionID, question string, productIDs []string, returned int, executionSeconds float64, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeRecommendationServed,
		Data: map[string]interface{}{
			"session_id":     sessionID,
			"question":       question,
			"product_ids":    productIDs,
			"returned":       returned,
			"execution_time": executionSeconds,
		},
		OccurredAt: at,
	}
}

func SessionsSwept(removed int, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       TypeSessionsSwept,
		Data:       map[string]interface{}{"removed": removed},
		OccurredAt: at,
	}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
