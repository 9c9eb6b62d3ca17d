// internal/domain/vehicle/dto.go
package vehicle

import "time"

// CreateVehicleRequest for registering a new fleet vehicle.
type CreateVehicleRequest struct {
	LicensePlate    string     `json:"license_plate" binding:"required,max=20"`
	VehicleType     Type       `json:"vehicle_type" binding:"required"`
	Make            string     `json:"make" binding:"required,max=100"`
	Model           string     `json:"model" binding:"required,max=100"`
	Year            int        `json:"year" binding:"required"`
	VIN             *string    `json:"vin" binding:"omitempty,max=17"`
	MaxLoadKg       float64    `json:"max_load_kg" binding:"required,gt=0"`
	AcquisitionCost *float64   `json:"acquisition_cost" binding:"required,min=0"`
	AcquisitionDate *time.Time `json:"acquisition_date"`
}

// UpdateVehicleRequest is a partial update; only provided fields change.
// Status changes go through the transition graph, odometer_km may never
// decrease.
type UpdateVehicleRequest struct {
	LicensePlate    *string    `json:"license_plate" binding:"omitempty,max=20"`
	VehicleType     *Type      `json:"vehicle_type"`
	Make            *string    `json:"make" binding:"omitempty,max=100"`
	Model           *string    `json:"model" binding:"omitempty,max=100"`
	Year            *int       `json:"year"`
	VIN             *string    `json:"vin" binding:"omitempty,max=17"`
	Status          *Status    `json:"status"`
	MaxLoadKg       *float64   `json:"max_load_kg" binding:"omitempty,gt=0"`
	OdometerKm      *float64   `json:"odometer_km" binding:"omitempty,min=0"`
	AcquisitionCost *float64   `json:"acquisition_cost" binding:"omitempty,min=0"`
	AcquisitionDate *time.Time `json:"acquisition_date"`
}

type ListFilters struct {
	Status      string `form:"status"`
	VehicleType string `form:"vehicle_type"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}
