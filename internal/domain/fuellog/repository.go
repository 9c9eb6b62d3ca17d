// internal/domain/fuellog/repository.go
package fuellog

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, f *FuelLog) error
	FindByID(ctx context.Context, id string) (*FuelLog, error)
	List(ctx context.Context, filters ListFilters) ([]FuelLog, int64, error)

	LockByID(ctx context.Context, tx pgx.Tx, id string) (*FuelLog, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, f *FuelLog) error

	ListByVehicle(ctx context.Context, vehicleID string) ([]FuelLog, error)
	ListAll(ctx context.Context) ([]FuelLog, error)
}
