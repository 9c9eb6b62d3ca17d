// internal/domain/user/entity.go
package user

import "time"

type Role string

const (
	RoleManager        Role = "MANAGER"
	RoleDispatcher     Role = "DISPATCHER"
	RoleSafetyOfficer  Role = "SAFETY_OFFICER"
	RoleFinanceAnalyst Role = "FINANCE_ANALYST"
)

var ValidRoles = []string{
	string(RoleManager), string(RoleDispatcher), string(RoleSafetyOfficer), string(RoleFinanceAnalyst),
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
