// internal/domain/fuellog/entity.go
package fuellog

import "time"

type FuelType string

const (
	FuelDiesel   FuelType = "DIESEL"
	FuelPetrol   FuelType = "PETROL"
	FuelCNG      FuelType = "CNG"
	FuelLPG      FuelType = "LPG"
	FuelElectric FuelType = "ELECTRIC"
)

var ValidFuelTypes = []string{
	string(FuelDiesel), string(FuelPetrol), string(FuelCNG), string(FuelLPG), string(FuelElectric),
}

type FuelLog struct {
	ID               string    `json:"id" db:"id"`
	VehicleID        string    `json:"vehicle_id" db:"vehicle_id"`
	DriverID         *string   `json:"driver_id" db:"driver_id"`
	TripID           *string   `json:"trip_id" db:"trip_id"`
	ExpenseID        string    `json:"expense_id" db:"expense_id"`
	FuelType         FuelType  `json:"fuel_type" db:"fuel_type"`
	Liters           float64   `json:"liters" db:"liters"`
	PricePerLiter    float64   `json:"price_per_liter" db:"price_per_liter"`
	TotalCost        float64   `json:"total_cost" db:"total_cost"`
	OdometerAtFillKm float64   `json:"odometer_at_fill_km" db:"odometer_at_fill_km"`
	StationName      *string   `json:"station_name" db:"station_name"`
	FilledAt         time.Time `json:"filled_at" db:"filled_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
