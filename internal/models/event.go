package models

// LifehackCreatedEvent is published to Kafka when the resolver materializes
// a new daily lifehack.
type LifehackCreatedEvent struct {
	EventID    string `json:"event_id"`   // Unique identifier for the event
	LifehackID int64  `json:"lifehack_id"`
	Date       string `json:"date"`      // Day key in YYYY-MM-DD form
	Source     string `json:"source"`    // "generated" or "fallback"
	Timestamp  int64  `json:"timestamp"` // Unix seconds when the event was emitted
}
