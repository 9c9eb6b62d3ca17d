// internal/domain/vehicle/entity.go
package vehicle

import (
	"time"

	"fleetflow-service/internal/domain/transition"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOnTrip    Status = "ON_TRIP"
	StatusInShop    Status = "IN_SHOP"
	StatusRetired   Status = "RETIRED"
)

type Type string

const (
	TypeTruck Type = "TRUCK"
	TypeVan   Type = "VAN"
	TypeBike  Type = "BIKE"
)

var ValidStatuses = []string{
	string(StatusAvailable), string(StatusOnTrip), string(StatusInShop), string(StatusRetired),
}

var ValidTypes = []string{string(TypeTruck), string(TypeVan), string(TypeBike)}

// Transitions is the shared status graph. RETIRED is terminal: vehicles are
// never deleted, only retired.
var Transitions = transition.NewGraph("vehicle", map[string][]string{
	string(StatusAvailable): {string(StatusOnTrip), string(StatusInShop), string(StatusRetired)},
	string(StatusOnTrip):    {string(StatusAvailable)},
	string(StatusInShop):    {string(StatusAvailable)},
	string(StatusRetired):   {},
})

// Vehicle represents a fleet vehicle. OdometerKm is monotonically
// non-decreasing across all writers.
type Vehicle struct {
	ID              string     `json:"id" db:"id"`
	LicensePlate    string     `json:"license_plate" db:"license_plate"`
	VehicleType     Type       `json:"vehicle_type" db:"vehicle_type"`
	Make            string     `json:"make" db:"make"`
	Model           string     `json:"model" db:"model"`
	Year            int        `json:"year" db:"year"`
	VIN             *string    `json:"vin,omitempty" db:"vin"`
	Status          Status     `json:"status" db:"status"`
	MaxLoadKg       float64    `json:"max_load_kg" db:"max_load_kg"`
	OdometerKm      float64    `json:"odometer_km" db:"odometer_km"`
	AcquisitionCost float64    `json:"acquisition_cost" db:"acquisition_cost"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty" db:"acquisition_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
