// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/vehicle"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const vehicleColumns = `id, license_plate, vehicle_type, make, model, year, vin, status,
	       max_load_kg, odometer_km, acquisition_cost, acquisition_date, created_at, updated_at`

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func scanVehicle(row pgx.Row) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := row.Scan(
		&v.ID, &v.LicensePlate, &v.VehicleType, &v.Make, &v.Model, &v.Year, &v.VIN, &v.Status,
		&v.MaxLoadKg, &v.OdometerKm, &v.AcquisitionCost, &v.AcquisitionDate, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new vehicle, generating its ID.
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if v.ID == "" {
		v.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO vehicles (
			id, license_plate, vehicle_type, make, model, year, vin, status,
			max_load_kg, odometer_km, acquisition_cost, acquisition_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		v.ID, v.LicensePlate, v.VehicleType, v.Make, v.Model, v.Year, v.VIN, v.Status,
		v.MaxLoadKg, v.OdometerKm, v.AcquisitionCost, v.AcquisitionDate,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	v, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("vehicle %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles SET
			license_plate = $2, vehicle_type = $3, make = $4, model = $5, year = $6,
			vin = $7, status = $8, max_load_kg = $9, odometer_km = $10,
			acquisition_cost = $11, acquisition_date = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		v.ID, v.LicensePlate, v.VehicleType, v.Make, v.Model, v.Year,
		v.VIN, v.Status, v.MaxLoadKg, v.OdometerKm,
		v.AcquisitionCost, v.AcquisitionDate,
	).Scan(&v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("vehicle %s not found", v.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) List(ctx context.Context, filters *vehicle.ListFilters) ([]vehicle.Vehicle, int64, error) {
	var conds []string
	var args []interface{}

	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.VehicleType != "" {
		args = append(args, filters.VehicleType)
		conds = append(conds, fmt.Sprintf("vehicle_type = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM vehicles"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+vehicleColumns+" FROM vehicles%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var out []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		out = append(out, *v)
	}
	return out, total, rows.Err()
}

func (r *VehicleRepository) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vehicles WHERE license_plate = $1)`, plate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check license plate: %w", err)
	}
	return exists, nil
}

func (r *VehicleRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vehicles WHERE vin = $1)`, vin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vin: %w", err)
	}
	return exists, nil
}

// LockByID loads the vehicle under FOR UPDATE so concurrent lifecycle
// transitions serialize on the row.
func (r *VehicleRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 FOR UPDATE`

	v, err := scanVehicle(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("vehicle %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepository) UpdateTx(ctx context.Context, tx pgx.Tx, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles SET
			status = $2, odometer_km = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(ctx, query, v.ID, v.Status, v.OdometerKm).Scan(&v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("vehicle %s not found", v.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle in tx: %w", err)
	}
	return nil
}

func (r *VehicleRepository) CountByStatus(ctx context.Context) (map[vehicle.Status]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM vehicles GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles by status: %w", err)
	}
	defer rows.Close()

	out := make(map[vehicle.Status]int64)
	for rows.Next() {
		var status vehicle.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *VehicleRepository) FindByIDs(ctx context.Context, ids []string) ([]vehicle.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer rows.Close()

	var out []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// ListAll returns every vehicle, or just one when vehicleID is set. Used by
// the analytics queries, which aggregate in memory.
func (r *VehicleRepository) ListAll(ctx context.Context, vehicleID string) ([]vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	var args []interface{}
	if vehicleID != "" {
		query += ` WHERE id = $1`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var out []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}
