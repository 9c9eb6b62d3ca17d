// internal/domain/expense/entity.go
package expense

import "time"

type Category string

const (
	CategoryFuel        Category = "FUEL"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryInsurance   Category = "INSURANCE"
	CategoryToll        Category = "TOLL"
	CategoryParking     Category = "PARKING"
	CategoryFine        Category = "FINE"
	CategoryOther       Category = "OTHER"
)

var ValidCategories = []string{
	string(CategoryFuel), string(CategoryMaintenance), string(CategoryInsurance),
	string(CategoryToll), string(CategoryParking), string(CategoryFine), string(CategoryOther),
}

// CategorySummary is one row of the spend-by-category report.
type CategorySummary struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
	Count    int64    `json:"count"`
}

type Expense struct {
	ID               string    `json:"id" db:"id"`
	VehicleID        *string   `json:"vehicle_id" db:"vehicle_id"`
	MaintenanceLogID *string   `json:"maintenance_log_id" db:"maintenance_log_id"`
	Category         Category  `json:"category" db:"category"`
	Amount           float64   `json:"amount" db:"amount"`
	Description      string    `json:"description" db:"description"`
	IncurredAt       time.Time `json:"incurred_at" db:"incurred_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
