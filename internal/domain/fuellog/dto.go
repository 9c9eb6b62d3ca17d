// internal/domain/fuellog/dto.go
package fuellog

import "time"

type CreateFuelLogRequest struct {
	VehicleID        string     `json:"vehicle_id" binding:"required"`
	DriverID         *string    `json:"driver_id"`
	TripID           *string    `json:"trip_id"`
	FuelType         string     `json:"fuel_type" binding:"required"`
	Liters           float64    `json:"liters" binding:"required,gt=0"`
	PricePerLiter    float64    `json:"price_per_liter" binding:"required,gt=0"`
	OdometerAtFillKm float64    `json:"odometer_at_fill_km" binding:"required,min=0"`
	StationName      *string    `json:"station_name" binding:"omitempty,max=100"`
	FilledAt         *time.Time `json:"filled_at"`
}

type UpdateFuelLogRequest struct {
	Liters           *float64 `json:"liters" binding:"omitempty,gt=0"`
	PricePerLiter    *float64 `json:"price_per_liter" binding:"omitempty,gt=0"`
	OdometerAtFillKm *float64 `json:"odometer_at_fill_km" binding:"omitempty,min=0"`
	StationName      *string  `json:"station_name" binding:"omitempty,max=100"`
}

type ListFilters struct {
	VehicleID string `form:"vehicle_id"`
	DriverID  string `form:"driver_id"`
	TripID    string `form:"trip_id"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
