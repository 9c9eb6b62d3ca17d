// internal/domain/maintenance/dto.go
package maintenance

import "time"

type CreateMaintenanceRequest struct {
	VehicleID       string    `json:"vehicle_id" binding:"required"`
	MaintenanceType string    `json:"maintenance_type" binding:"required"`
	Description     string    `json:"description" binding:"required,max=1000"`
	ScheduledDate   time.Time `json:"scheduled_date" binding:"required"`
	OdometerKm      *float64  `json:"odometer_km" binding:"omitempty,min=0"`
	LaborCost       *float64  `json:"labor_cost" binding:"omitempty,min=0"`
	PartsCost       *float64  `json:"parts_cost" binding:"omitempty,min=0"`
	VendorName      *string   `json:"vendor_name" binding:"omitempty,max=100"`
	InvoiceNumber   *string   `json:"invoice_number" binding:"omitempty,max=100"`
	Notes           *string   `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateMaintenanceRequest struct {
	Description   *string    `json:"description" binding:"omitempty,max=1000"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	OdometerKm    *float64   `json:"odometer_km" binding:"omitempty,min=0"`
	LaborCost     *float64   `json:"labor_cost" binding:"omitempty,min=0"`
	PartsCost     *float64   `json:"parts_cost" binding:"omitempty,min=0"`
	VendorName    *string    `json:"vendor_name" binding:"omitempty,max=100"`
	InvoiceNumber *string    `json:"invoice_number" binding:"omitempty,max=100"`
	Notes         *string    `json:"notes" binding:"omitempty,max=1000"`
}

// CompleteMaintenanceRequest carries the final cost and vendor details that
// usually only become known once the work is done. Every field is optional.
type CompleteMaintenanceRequest struct {
	LaborCost     *float64 `json:"labor_cost" binding:"omitempty,min=0"`
	PartsCost     *float64 `json:"parts_cost" binding:"omitempty,min=0"`
	VendorName    *string  `json:"vendor_name" binding:"omitempty,max=100"`
	InvoiceNumber *string  `json:"invoice_number" binding:"omitempty,max=100"`
	Notes         *string  `json:"notes" binding:"omitempty,max=1000"`
}

type AddExpenseRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description" binding:"required,max=255"`
	IncurredAt  *time.Time `json:"incurred_at"`
}

type ListFilters struct {
	Status    string `form:"status"`
	VehicleID string `form:"vehicle_id"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
