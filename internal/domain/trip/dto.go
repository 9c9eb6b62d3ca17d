// internal/domain/trip/dto.go
package trip

import "time"

type CreateTripRequest struct {
	VehicleID     string     `json:"vehicle_id" binding:"required"`
	DriverID      string     `json:"driver_id" binding:"required"`
	OriginAddress string     `json:"origin_address" binding:"required,max=255"`
	DestAddress   string     `json:"destination_address" binding:"required,max=255"`
	CargoWeightKg *float64   `json:"cargo_weight_kg" binding:"omitempty,min=0"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Notes         *string    `json:"notes" binding:"omitempty,max=1000"`
}

type CompleteTripRequest struct {
	OdometerEndKm float64  `json:"odometer_end_km" binding:"required,min=0"`
	DistanceKm    *float64 `json:"distance_km" binding:"omitempty,min=0"`
	Notes         *string  `json:"notes" binding:"omitempty,max=1000"`
}

type CancelTripRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=1000"`
}

type ListFilters struct {
	Status    string `form:"status"`
	VehicleID string `form:"vehicle_id"`
	DriverID  string `form:"driver_id"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
