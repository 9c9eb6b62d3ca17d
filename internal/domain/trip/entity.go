// internal/domain/trip/entity.go
package trip

import (
	"time"

	"fleetflow-service/internal/domain/transition"
)

type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusDispatched Status = "DISPATCHED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

var ValidStatuses = []string{
	string(StatusDraft), string(StatusDispatched), string(StatusCompleted), string(StatusCancelled),
}

// Transitions covers the trip lifecycle. COMPLETED and CANCELLED are terminal.
var Transitions = transition.NewGraph("trip", map[string][]string{
	string(StatusDraft):      {string(StatusDispatched), string(StatusCancelled)},
	string(StatusDispatched): {string(StatusCompleted), string(StatusCancelled)},
	string(StatusCompleted):  {},
	string(StatusCancelled):  {},
})

type Trip struct {
	ID              string     `json:"id" db:"id"`
	TripNumber      string     `json:"trip_number" db:"trip_number"`
	VehicleID       string     `json:"vehicle_id" db:"vehicle_id"`
	DriverID        string     `json:"driver_id" db:"driver_id"`
	OriginAddress   string     `json:"origin_address" db:"origin_address"`
	DestAddress     string     `json:"destination_address" db:"destination_address"`
	CargoWeightKg   *float64   `json:"cargo_weight_kg" db:"cargo_weight_kg"`
	Status          Status     `json:"status" db:"status"`
	ScheduledAt     *time.Time `json:"scheduled_at" db:"scheduled_at"`
	DispatchedAt    *time.Time `json:"dispatched_at" db:"dispatched_at"`
	CompletedAt     *time.Time `json:"completed_at" db:"completed_at"`
	CancelledAt     *time.Time `json:"cancelled_at" db:"cancelled_at"`
	OdometerStartKm *float64   `json:"odometer_start_km" db:"odometer_start_km"`
	OdometerEndKm   *float64   `json:"odometer_end_km" db:"odometer_end_km"`
	DistanceKm      *float64   `json:"distance_km" db:"distance_km"`
	Notes           *string    `json:"notes" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
