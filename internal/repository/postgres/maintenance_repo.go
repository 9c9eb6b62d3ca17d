// internal/repository/postgres/maintenance_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/maintenance"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const maintenanceColumns = `id, vehicle_id, maintenance_type, description, status, scheduled_date,
	       started_at, completed_at, cancelled_at, odometer_km, labor_cost, parts_cost,
	       vendor_name, invoice_number, notes, created_at, updated_at`

type MaintenanceRepository struct {
	db *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func scanMaintenance(row pgx.Row) (*maintenance.MaintenanceLog, error) {
	var m maintenance.MaintenanceLog
	err := row.Scan(
		&m.ID, &m.VehicleID, &m.MaintenanceType, &m.Description, &m.Status, &m.ScheduledDate,
		&m.StartedAt, &m.CompletedAt, &m.CancelledAt, &m.OdometerKm, &m.LaborCost, &m.PartsCost,
		&m.VendorName, &m.InvoiceNumber, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) CreateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	if m.ID == "" {
		m.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO maintenance_logs (
			id, vehicle_id, maintenance_type, description, status, scheduled_date,
			odometer_km, labor_cost, parts_cost, vendor_name, invoice_number, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		m.ID, m.VehicleID, m.MaintenanceType, m.Description, m.Status, m.ScheduledDate,
		m.OdometerKm, m.LaborCost, m.PartsCost, m.VendorName, m.InvoiceNumber, m.Notes,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create maintenance log: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs WHERE id = $1`

	m, err := scanMaintenance(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("maintenance log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance log: %w", err)
	}
	return m, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *maintenance.MaintenanceLog) error {
	query := `
		UPDATE maintenance_logs SET
			description = $2, scheduled_date = $3, odometer_km = $4,
			labor_cost = $5, parts_cost = $6, vendor_name = $7, invoice_number = $8,
			notes = $9, started_at = $10, status = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		m.ID, m.Description, m.ScheduledDate, m.OdometerKm,
		m.LaborCost, m.PartsCost, m.VendorName, m.InvoiceNumber,
		m.Notes, m.StartedAt, m.Status,
	).Scan(&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("maintenance log %s not found", m.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update maintenance log: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) List(ctx context.Context, filters maintenance.ListFilters) ([]maintenance.MaintenanceLog, int64, error) {
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

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM maintenance_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+maintenanceColumns+" FROM maintenance_logs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	defer rows.Close()

	var out []maintenance.MaintenanceLog
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan maintenance log: %w", err)
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}

func (r *MaintenanceRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*maintenance.MaintenanceLog, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_logs WHERE id = $1 FOR UPDATE`

	m, err := scanMaintenance(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("maintenance log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock maintenance log: %w", err)
	}
	return m, nil
}

func (r *MaintenanceRepository) UpdateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	query := `
		UPDATE maintenance_logs SET
			status = $2, started_at = $3, completed_at = $4, cancelled_at = $5,
			labor_cost = $6, parts_cost = $7, vendor_name = $8, invoice_number = $9,
			notes = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		m.ID, m.Status, m.StartedAt, m.CompletedAt, m.CancelledAt,
		m.LaborCost, m.PartsCost, m.VendorName, m.InvoiceNumber, m.Notes,
	).Scan(&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("maintenance log %s not found", m.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update maintenance log in tx: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) CountOpenForVehicleTx(ctx context.Context, tx pgx.Tx, vehicleID, excludeID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM maintenance_logs
		WHERE vehicle_id = $1
		  AND id <> $2
		  AND status IN ('SCHEDULED', 'IN_PROGRESS')
	`

	var count int64
	if err := tx.QueryRow(ctx, query, vehicleID, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open maintenance logs: %w", err)
	}
	return count, nil
}

func (r *MaintenanceRepository) CountByStatus(ctx context.Context) (map[maintenance.Status]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM maintenance_logs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count maintenance logs by status: %w", err)
	}
	defer rows.Close()

	out := make(map[maintenance.Status]int64)
	for rows.Next() {
		var status maintenance.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan maintenance status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}
