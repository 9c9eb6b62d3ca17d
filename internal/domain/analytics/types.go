// internal/domain/analytics/types.go
package analytics

// Ratio fields are nil when the denominator is zero (fleet utilization
// reports 0 instead). Rounding: two decimals for aggregates and percentages,
// four for cost-per-km ratios.

type FleetSummary struct {
	TotalVehicles      int64            `json:"total_vehicles"`
	VehiclesByStatus   map[string]int64 `json:"vehicles_by_status"`
	TotalDrivers       int64            `json:"total_drivers"`
	DriversByStatus    map[string]int64 `json:"drivers_by_status"`
	TripsByStatus      map[string]int64 `json:"trips_by_status"`
	ActiveTrips        int64            `json:"active_trips"`
	OpenMaintenance    int64            `json:"open_maintenance"`
	UtilizationPercent float64          `json:"utilization_percent"`
}

type VehicleUtilization struct {
	VehicleID          string   `json:"vehicle_id"`
	LicensePlate       string   `json:"license_plate"`
	Status             string   `json:"status"`
	CompletedTrips     int64    `json:"completed_trips"`
	TotalDistanceKm    float64  `json:"total_distance_km"`
	AvgDistancePerTrip *float64 `json:"avg_distance_per_trip_km"`
}

type FuelEfficiency struct {
	VehicleID     string   `json:"vehicle_id"`
	LicensePlate  string   `json:"license_plate"`
	FillCount     int64    `json:"fill_count"`
	Segments      int64    `json:"segments"`
	TotalLiters   float64  `json:"total_liters"`
	TotalFuelCost float64  `json:"total_fuel_cost"`
	TotalKm       float64  `json:"total_km"`
	KmPerLiter    *float64 `json:"km_per_liter"`
	CostPerKm     *float64 `json:"cost_per_km"`
}

type VehicleCost struct {
	VehicleID    string             `json:"vehicle_id"`
	LicensePlate string             `json:"license_plate"`
	OdometerKm   float64            `json:"odometer_km"`
	TotalCost    float64            `json:"total_cost"`
	ByCategory   map[string]float64 `json:"cost_by_category"`
	CostPerKm    *float64           `json:"cost_per_km"`
}

type DriverPerformance struct {
	DriverID        string   `json:"driver_id"`
	Name            string   `json:"name"`
	SafetyScore     float64  `json:"safety_score"`
	CompletedTrips  int64    `json:"completed_trips"`
	TotalDistanceKm float64  `json:"total_distance_km"`
	AvgDistanceKm   *float64 `json:"avg_distance_km"`
}

type VehicleROI struct {
	VehicleID       string   `json:"vehicle_id"`
	LicensePlate    string   `json:"license_plate"`
	AcquisitionCost float64  `json:"acquisition_cost"`
	OperatingCost   float64  `json:"operating_cost"`
	TotalCost       float64  `json:"total_cost"`
	TotalKm         float64  `json:"total_km"`
	CostPerKm       *float64 `json:"cost_per_km"`
}

type TripsSummary struct {
	Total           int64            `json:"total"`
	ByStatus        map[string]int64 `json:"by_status"`
	Completed       int64            `json:"completed"`
	TotalDistanceKm float64          `json:"total_distance_km"`
	AvgDistanceKm   *float64         `json:"avg_distance_km"`
	CompletionRate  *float64         `json:"completion_rate_percent"`
}

type MonthlyExpense struct {
	Month      string             `json:"month"`
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
}

type MonthlyExpenseReport struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Months []MonthlyExpense `json:"months"`
	Total  float64          `json:"total"`
}
