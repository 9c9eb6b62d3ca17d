// internal/domain/maintenance/entity.go
package maintenance

import (
	"time"

	"fleetflow-service/internal/domain/transition"
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

type Type string

const (
	TypePreventive Type = "PREVENTIVE"
	TypeCorrective Type = "CORRECTIVE"
	TypeInspection Type = "INSPECTION"
	TypeTireChange Type = "TIRE_CHANGE"
	TypeOther      Type = "OTHER"
)

var ValidStatuses = []string{
	string(StatusScheduled), string(StatusInProgress), string(StatusCompleted), string(StatusCancelled),
}

var ValidTypes = []string{
	string(TypePreventive), string(TypeCorrective), string(TypeInspection),
	string(TypeTireChange), string(TypeOther),
}

// Transitions covers a single maintenance log. A log can be cancelled from
// SCHEDULED or IN_PROGRESS; COMPLETED and CANCELLED are terminal.
var Transitions = transition.NewGraph("maintenance log", map[string][]string{
	string(StatusScheduled):  {string(StatusInProgress), string(StatusCancelled)},
	string(StatusInProgress): {string(StatusCompleted), string(StatusCancelled)},
	string(StatusCompleted):  {},
	string(StatusCancelled):  {},
})

type MaintenanceLog struct {
	ID              string     `json:"id" db:"id"`
	VehicleID       string     `json:"vehicle_id" db:"vehicle_id"`
	MaintenanceType Type       `json:"maintenance_type" db:"maintenance_type"`
	Description     string     `json:"description" db:"description"`
	Status          Status     `json:"status" db:"status"`
	ScheduledDate   time.Time  `json:"scheduled_date" db:"scheduled_date"`
	StartedAt       *time.Time `json:"started_at" db:"started_at"`
	CompletedAt     *time.Time `json:"completed_at" db:"completed_at"`
	CancelledAt     *time.Time `json:"cancelled_at" db:"cancelled_at"`
	OdometerKm      *float64   `json:"odometer_km" db:"odometer_km"`
	LaborCost       float64    `json:"labor_cost" db:"labor_cost"`
	PartsCost       float64    `json:"parts_cost" db:"parts_cost"`
	VendorName      *string    `json:"vendor_name" db:"vendor_name"`
	InvoiceNumber   *string    `json:"invoice_number" db:"invoice_number"`
	Notes           *string    `json:"notes" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

func (m *MaintenanceLog) Terminal() bool {
	return m.Status == StatusCompleted || m.Status == StatusCancelled
}
