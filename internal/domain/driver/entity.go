// internal/domain/driver/entity.go
package driver

import (
	"time"

	"fleetflow-service/internal/domain/transition"
)

type Status string

const (
	StatusOnDuty    Status = "ON_DUTY"
	StatusOffDuty   Status = "OFF_DUTY"
	StatusSuspended Status = "SUSPENDED"
	StatusOnTrip    Status = "ON_TRIP"
)

type LicenseCategory string

const (
	LicenseTruck LicenseCategory = "TRUCK"
	LicenseVan   LicenseCategory = "VAN"
	LicenseBike  LicenseCategory = "BIKE"
)

var ValidStatuses = []string{
	string(StatusOnDuty), string(StatusOffDuty), string(StatusSuspended), string(StatusOnTrip),
}

var ValidLicenseCategories = []string{
	string(LicenseTruck), string(LicenseVan), string(LicenseBike),
}

// Transitions is the shared status graph. ON_TRIP is entered only through
// trip dispatch; SUSPENDED drivers must pass through OFF_DUTY to return.
var Transitions = transition.NewGraph("driver", map[string][]string{
	string(StatusOffDuty):   {string(StatusOnDuty), string(StatusSuspended)},
	string(StatusOnDuty):    {string(StatusOffDuty), string(StatusOnTrip), string(StatusSuspended)},
	string(StatusOnTrip):    {string(StatusOnDuty)},
	string(StatusSuspended): {string(StatusOffDuty)},
})

type Driver struct {
	ID                string          `json:"id" db:"id"`
	EmployeeID        string          `json:"employee_id" db:"employee_id"`
	FirstName         string          `json:"first_name" db:"first_name"`
	LastName          string          `json:"last_name" db:"last_name"`
	Phone             string          `json:"phone" db:"phone"`
	Email             string          `json:"email" db:"email"`
	LicenseNumber     string          `json:"license_number" db:"license_number"`
	LicenseCategory   LicenseCategory `json:"license_category" db:"license_category"`
	LicenseExpiryDate time.Time       `json:"license_expiry_date" db:"license_expiry_date"`
	SafetyScore       float64         `json:"safety_score" db:"safety_score"`
	Status            Status          `json:"status" db:"status"`
	HireDate          time.Time       `json:"hire_date" db:"hire_date"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// LicenseExpired compares the expiry date against ref at day granularity
// (UTC midnight), matching how expiry dates are entered.
func (d *Driver) LicenseExpired(ref time.Time) bool {
	day := func(t time.Time) time.Time {
		y, m, dd := t.UTC().Date()
		return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	}
	return day(d.LicenseExpiryDate).Before(day(ref))
}
