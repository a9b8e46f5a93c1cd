package services

import (
	"encoding/json"
	"log"
	"time"
)

// Activity event routing keys.
const (
	EventUserRegistered = "user.registered"
	EventItemCreated    = "item.created"
	EventItemUpdated    = "item.updated"
	EventItemDeleted    = "item.deleted"
)

// EventPublisher delivers activity events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the JSON payload of an activity event.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	ItemID     string    `json:"item_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent is fire-and-forget: a failed publish is logged and never
// reaches the caller.
func publishEvent(p EventPublisher, eventType, userID, itemID string) {
	if p == nil {
		return
	}
	body, err := json.Marshal(Event{
		Type:       eventType,
		UserID:     userID,
		ItemID:     itemID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := p.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for user %s: %v", eventType, userID, err)
	}
}
