// internal/events/event.go
package events

import "time"

// Event types published over the fleet event stream.
const (
	TypeTripDispatched       = "trip.dispatched"
	TypeTripCompleted        = "trip.completed"
	TypeTripCancelled        = "trip.cancelled"
	TypeVehicleStatusChanged = "vehicle.status_changed"
	TypeDriverStatusChanged  = "driver.status_changed"
	TypeMaintenanceScheduled = "maintenance.scheduled"
	TypeMaintenanceCompleted = "maintenance.completed"
	TypeMaintenanceCancelled = "maintenance.cancelled"
	TypeFuelLogged           = "fuel.logged"
)

type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

func NewEvent(eventType string, payload interface{}) *Event {
	return &Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher is what the lifecycle services see. The hub implements it; tests
// substitute a recorder.
type Publisher interface {
	Publish(eventType string, payload interface{})
}
