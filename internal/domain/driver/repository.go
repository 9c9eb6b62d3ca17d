// internal/domain/driver/repository.go
package driver

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	Create(ctx context.Context, d *Driver) error
	FindByID(ctx context.Context, id string) (*Driver, error)
	Update(ctx context.Context, d *Driver) error
	List(ctx context.Context, filters ListFilters) ([]Driver, int64, error)
	ListAssignable(ctx context.Context) ([]Driver, error)

	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)

	LockByID(ctx context.Context, tx pgx.Tx, id string) (*Driver, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, d *Driver) error

	CountByStatus(ctx context.Context) (map[Status]int64, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]Driver, error)
}
