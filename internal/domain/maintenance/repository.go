// internal/domain/maintenance/repository.go
package maintenance

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, m *MaintenanceLog) error
	FindByID(ctx context.Context, id string) (*MaintenanceLog, error)
	Update(ctx context.Context, m *MaintenanceLog) error
	List(ctx context.Context, filters ListFilters) ([]MaintenanceLog, int64, error)

	LockByID(ctx context.Context, tx pgx.Tx, id string) (*MaintenanceLog, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, m *MaintenanceLog) error

	// CountOpenForVehicleTx counts SCHEDULED and IN_PROGRESS logs for the
	// vehicle, excluding excludeID. Used to decide whether completing or
	// cancelling a log releases the vehicle from the shop.
	CountOpenForVehicleTx(ctx context.Context, tx pgx.Tx, vehicleID, excludeID string) (int64, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
