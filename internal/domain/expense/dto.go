// internal/domain/expense/dto.go
package expense

type ListFilters struct {
	Category  string `form:"category"`
	VehicleID string `form:"vehicle_id"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
