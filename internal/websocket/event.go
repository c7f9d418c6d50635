package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated      EventType = "created"
	EventTypeUpdated      EventType = "updated"
	EventTypeDeleted      EventType = "deleted"
	EventTypeRecalculated EventType = "recalculated"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeProfile EntityType = "profile"
	EntityTypeBudget  EntityType = "budget"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "profile.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "profile"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ProfileCreated creates a profile.created event
func ProfileCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeProfile, payload)
}

// ProfileUpdated creates a profile.updated event
func ProfileUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeProfile, payload)
}

// ProfileDeleted creates a profile.deleted event
func ProfileDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeProfile, payload)
}

// BudgetRecalculated creates a budget.recalculated event carrying the fresh
// calculation result for a profile
func BudgetRecalculated(payload interface{}) Event {
	return NewEvent(EventTypeRecalculated, EntityTypeBudget, payload)
}
