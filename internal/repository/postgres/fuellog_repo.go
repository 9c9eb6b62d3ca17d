// internal/repository/postgres/fuellog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/fuellog"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const fuelLogColumns = `id, vehicle_id, driver_id, trip_id, expense_id, fuel_type, liters,
	       price_per_liter, total_cost, odometer_at_fill_km, station_name, filled_at, created_at, updated_at`

type FuelLogRepository struct {
	db *pgxpool.Pool
}

func NewFuelLogRepository(db *pgxpool.Pool) *FuelLogRepository {
	return &FuelLogRepository{db: db}
}

func scanFuelLog(row pgx.Row) (*fuellog.FuelLog, error) {
	var f fuellog.FuelLog
	err := row.Scan(
		&f.ID, &f.VehicleID, &f.DriverID, &f.TripID, &f.ExpenseID, &f.FuelType, &f.Liters,
		&f.PricePerLiter, &f.TotalCost, &f.OdometerAtFillKm, &f.StationName, &f.FilledAt,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FuelLogRepository) CreateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error {
	if f.ID == "" {
		f.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO fuel_logs (
			id, vehicle_id, driver_id, trip_id, expense_id, fuel_type, liters,
			price_per_liter, total_cost, odometer_at_fill_km, station_name, filled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		f.ID, f.VehicleID, f.DriverID, f.TripID, f.ExpenseID, f.FuelType, f.Liters,
		f.PricePerLiter, f.TotalCost, f.OdometerAtFillKm, f.StationName, f.FilledAt,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fuel log: %w", err)
	}
	return nil
}

func (r *FuelLogRepository) FindByID(ctx context.Context, id string) (*fuellog.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs WHERE id = $1`

	f, err := scanFuelLog(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("fuel log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find fuel log: %w", err)
	}
	return f, nil
}

func (r *FuelLogRepository) List(ctx context.Context, filters fuellog.ListFilters) ([]fuellog.FuelLog, int64, error) {
	var conds []string
	var args []interface{}

	if filters.VehicleID != "" {
		args = append(args, filters.VehicleID)
		conds = append(conds, fmt.Sprintf("vehicle_id = $%d", len(args)))
	}
	if filters.DriverID != "" {
		args = append(args, filters.DriverID)
		conds = append(conds, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if filters.TripID != "" {
		args = append(args, filters.TripID)
		conds = append(conds, fmt.Sprintf("trip_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM fuel_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count fuel logs: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+fuelLogColumns+" FROM fuel_logs%s ORDER BY filled_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list fuel logs: %w", err)
	}
	defer rows.Close()

	var out []fuellog.FuelLog
	for rows.Next() {
		f, err := scanFuelLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan fuel log: %w", err)
		}
		out = append(out, *f)
	}
	return out, total, rows.Err()
}

func (r *FuelLogRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*fuellog.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs WHERE id = $1 FOR UPDATE`

	f, err := scanFuelLog(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("fuel log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock fuel log: %w", err)
	}
	return f, nil
}

func (r *FuelLogRepository) UpdateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error {
	query := `
		UPDATE fuel_logs SET
			liters = $2, price_per_liter = $3, total_cost = $4,
			odometer_at_fill_km = $5, station_name = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		f.ID, f.Liters, f.PricePerLiter, f.TotalCost, f.OdometerAtFillKm, f.StationName,
	).Scan(&f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("fuel log %s not found", f.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update fuel log in tx: %w", err)
	}
	return nil
}

func (r *FuelLogRepository) listWhere(ctx context.Context, cond string, args ...interface{}) ([]fuellog.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs`
	if cond != "" {
		query += " WHERE " + cond
	}
	query += ` ORDER BY filled_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel logs: %w", err)
	}
	defer rows.Close()

	var out []fuellog.FuelLog
	for rows.Next() {
		f, err := scanFuelLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fuel log: %w", err)
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *FuelLogRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]fuellog.FuelLog, error) {
	return r.listWhere(ctx, "vehicle_id = $1", vehicleID)
}

func (r *FuelLogRepository) ListAll(ctx context.Context) ([]fuellog.FuelLog, error) {
	return r.listWhere(ctx, "")
}
