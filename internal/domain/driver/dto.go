// internal/domain/driver/dto.go
package driver

import "time"

type CreateDriverRequest struct {
	EmployeeID        string    `json:"employee_id" binding:"required,max=20"`
	FirstName         string    `json:"first_name" binding:"required,max=50"`
	LastName          string    `json:"last_name" binding:"required,max=50"`
	Phone             string    `json:"phone" binding:"required,max=20"`
	Email             string    `json:"email" binding:"required,email"`
	LicenseNumber     string    `json:"license_number" binding:"required,max=30"`
	LicenseCategory   string    `json:"license_category" binding:"required"`
	LicenseExpiryDate time.Time `json:"license_expiry_date" binding:"required"`
	HireDate          time.Time `json:"hire_date" binding:"required"`
	SafetyScore       *float64  `json:"safety_score" binding:"omitempty,min=0,max=100"`
}

type UpdateDriverRequest struct {
	FirstName         *string    `json:"first_name" binding:"omitempty,max=50"`
	LastName          *string    `json:"last_name" binding:"omitempty,max=50"`
	Phone             *string    `json:"phone" binding:"omitempty,max=20"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	LicenseNumber     *string    `json:"license_number" binding:"omitempty,max=30"`
	LicenseCategory   *string    `json:"license_category"`
	LicenseExpiryDate *time.Time `json:"license_expiry_date"`
	SafetyScore       *float64   `json:"safety_score" binding:"omitempty,min=0,max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListFilters struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
