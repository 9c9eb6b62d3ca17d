// internal/domain/vehicle/repository.go
package vehicle

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	List(ctx context.Context, filters *ListFilters) ([]Vehicle, int64, error)

	ExistsByLicensePlate(ctx context.Context, plate string) (bool, error)
	ExistsByVIN(ctx context.Context, vin string) (bool, error)

	// Tx-scoped variants used by the lifecycle orchestrators. LockByID takes
	// a row lock so concurrent orchestrations serialize on the vehicle.
	LockByID(ctx context.Context, tx pgx.Tx, id string) (*Vehicle, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, v *Vehicle) error

	// CountByStatus powers the fleet utilization snapshot.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	FindByIDs(ctx context.Context, ids []string) ([]Vehicle, error)
	ListAll(ctx context.Context, vehicleID string) ([]Vehicle, error)
}
