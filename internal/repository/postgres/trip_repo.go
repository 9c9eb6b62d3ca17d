// internal/repository/postgres/trip_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow-service/internal/domain/trip"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const tripColumns = `id, trip_number, vehicle_id, driver_id, origin_address, destination_address,
	       cargo_weight_kg, status, scheduled_at, dispatched_at, completed_at, cancelled_at,
	       odometer_start_km, odometer_end_km, distance_km, notes, created_at, updated_at`

type TripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) *TripRepository {
	return &TripRepository{db: db}
}

func scanTrip(row pgx.Row) (*trip.Trip, error) {
	var t trip.Trip
	err := row.Scan(
		&t.ID, &t.TripNumber, &t.VehicleID, &t.DriverID, &t.OriginAddress, &t.DestAddress,
		&t.CargoWeightKg, &t.Status, &t.ScheduledAt, &t.DispatchedAt, &t.CompletedAt, &t.CancelledAt,
		&t.OdometerStartKm, &t.OdometerEndKm, &t.DistanceKm, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTx inserts a trip inside the numbering transaction so the sequence
// read and the insert cannot interleave with a concurrent creation.
func (r *TripRepository) CreateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error {
	if t.ID == "" {
		t.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO trips (
			id, trip_number, vehicle_id, driver_id, origin_address, destination_address,
			cargo_weight_kg, status, scheduled_at, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		t.ID, t.TripNumber, t.VehicleID, t.DriverID, t.OriginAddress, t.DestAddress,
		t.CargoWeightKg, t.Status, t.ScheduledAt, t.Notes,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (r *TripRepository) FindByID(ctx context.Context, id string) (*trip.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	t, err := scanTrip(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("trip %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}
	return t, nil
}

func (r *TripRepository) List(ctx context.Context, filters trip.ListFilters) ([]trip.Trip, int64, error) {
	var conds []string
	var args []interface{}

	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.VehicleID != "" {
		args = append(args, filters.VehicleID)
		conds = append(conds, fmt.Sprintf("vehicle_id = $%d", len(args)))
	}
	if filters.DriverID != "" {
		args = append(args, filters.DriverID)
		conds = append(conds, fmt.Sprintf("driver_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM trips"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+tripColumns+" FROM trips%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var out []trip.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		out = append(out, *t)
	}
	return out, total, rows.Err()
}

func (r *TripRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*trip.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 FOR UPDATE`

	t, err := scanTrip(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("trip %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock trip: %w", err)
	}
	return t, nil
}

func (r *TripRepository) UpdateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error {
	query := `
		UPDATE trips SET
			status = $2, dispatched_at = $3, completed_at = $4, cancelled_at = $5,
			odometer_start_km = $6, odometer_end_km = $7, distance_km = $8,
			notes = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		t.ID, t.Status, t.DispatchedAt, t.CompletedAt, t.CancelledAt,
		t.OdometerStartKm, t.OdometerEndKm, t.DistanceKm, t.Notes,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("trip %s not found", t.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update trip in tx: %w", err)
	}
	return nil
}

// NextSequence returns the next 4-digit sequence for trip numbers sharing the
// given day prefix, e.g. "TRP-20260115-".
func (r *TripRepository) NextSequence(ctx context.Context, tx pgx.Tx, prefix string) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(trip_number FROM $2) AS INTEGER)), 0)
		FROM trips
		WHERE trip_number LIKE $1
	`

	var max int
	err := tx.QueryRow(ctx, query, prefix+"%", len(prefix)+1).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read trip sequence: %w", err)
	}
	return max + 1, nil
}

func (r *TripRepository) CountByStatus(ctx context.Context) (map[trip.Status]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM trips GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips by status: %w", err)
	}
	defer rows.Close()

	out := make(map[trip.Status]int64)
	for rows.Next() {
		var status trip.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan trip status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *TripRepository) completedWhere(ctx context.Context, cond string, args ...interface{}) ([]trip.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE status = 'COMPLETED'`
	if cond != "" {
		query += " AND " + cond
	}
	query += ` ORDER BY completed_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed trips: %w", err)
	}
	defer rows.Close()

	var out []trip.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TripRepository) CompletedAll(ctx context.Context) ([]trip.Trip, error) {
	return r.completedWhere(ctx, "")
}

func (r *TripRepository) CompletedBetween(ctx context.Context, from, to time.Time) ([]trip.Trip, error) {
	return r.completedWhere(ctx, "completed_at >= $1 AND completed_at < $2", from, to)
}

func (r *TripRepository) CompletedByVehicle(ctx context.Context, vehicleID string) ([]trip.Trip, error) {
	return r.completedWhere(ctx, "vehicle_id = $1", vehicleID)
}

func (r *TripRepository) CompletedByDriver(ctx context.Context, driverID string) ([]trip.Trip, error) {
	return r.completedWhere(ctx, "driver_id = $1", driverID)
}
