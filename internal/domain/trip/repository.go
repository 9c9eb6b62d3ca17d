// internal/domain/trip/repository.go
package trip

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, t *Trip) error
	FindByID(ctx context.Context, id string) (*Trip, error)
	List(ctx context.Context, filters ListFilters) ([]Trip, int64, error)

	LockByID(ctx context.Context, tx pgx.Tx, id string) (*Trip, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, t *Trip) error

	// NextSequence returns max(NNNN)+1 among trip numbers carrying the given
	// TRP-YYYYMMDD- prefix. Must be called inside the creating transaction.
	NextSequence(ctx context.Context, tx pgx.Tx, prefix string) (int, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CompletedAll(ctx context.Context) ([]Trip, error)
	CompletedBetween(ctx context.Context, from, to time.Time) ([]Trip, error)
	CompletedByVehicle(ctx context.Context, vehicleID string) ([]Trip, error)
	CompletedByDriver(ctx context.Context, driverID string) ([]Trip, error)
}
