// internal/domain/expense/repository.go
package expense

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, e *Expense) error
	FindByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filters ListFilters) ([]Expense, int64, error)

	LockByID(ctx context.Context, tx pgx.Tx, id string) (*Expense, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, e *Expense) error

	ListByVehicle(ctx context.Context, vehicleID string) ([]Expense, error)
	ListByMaintenanceLog(ctx context.Context, maintenanceLogID string) ([]Expense, error)
	IncurredBetween(ctx context.Context, from, to time.Time) ([]Expense, error)
	ListAll(ctx context.Context) ([]Expense, error)
	SummaryByCategory(ctx context.Context) ([]CategorySummary, error)
}
