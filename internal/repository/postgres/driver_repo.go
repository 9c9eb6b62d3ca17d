// internal/repository/postgres/driver_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/driver"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const driverColumns = `id, employee_id, first_name, last_name, phone, email, license_number,
	       license_category, license_expiry_date, safety_score, status, hire_date, created_at, updated_at`

type DriverRepository struct {
	db *pgxpool.Pool
}

func NewDriverRepository(db *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{db: db}
}

func scanDriver(row pgx.Row) (*driver.Driver, error) {
	var d driver.Driver
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.FirstName, &d.LastName, &d.Phone, &d.Email, &d.LicenseNumber,
		&d.LicenseCategory, &d.LicenseExpiryDate, &d.SafetyScore, &d.Status, &d.HireDate,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	if d.ID == "" {
		d.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO drivers (
			id, employee_id, first_name, last_name, phone, email, license_number,
			license_category, license_expiry_date, safety_score, status, hire_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.ID, d.EmployeeID, d.FirstName, d.LastName, d.Phone, d.Email, d.LicenseNumber,
		d.LicenseCategory, d.LicenseExpiryDate, d.SafetyScore, d.Status, d.HireDate,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id string) (*driver.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	d, err := scanDriver(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("driver %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find driver: %w", err)
	}
	return d, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	query := `
		UPDATE drivers SET
			first_name = $2, last_name = $3, phone = $4, email = $5,
			license_number = $6, license_category = $7, license_expiry_date = $8,
			safety_score = $9, status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.ID, d.FirstName, d.LastName, d.Phone, d.Email,
		d.LicenseNumber, d.LicenseCategory, d.LicenseExpiryDate,
		d.SafetyScore, d.Status,
	).Scan(&d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("driver %s not found", d.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	return nil
}

func (r *DriverRepository) List(ctx context.Context, filters driver.ListFilters) ([]driver.Driver, int64, error) {
	var conds []string
	var args []interface{}

	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM drivers"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+driverColumns+" FROM drivers%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var out []driver.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan driver: %w", err)
		}
		out = append(out, *d)
	}
	return out, total, rows.Err()
}

// ListAssignable returns drivers eligible for a new trip assignment:
// on or off duty with a license that has not expired.
func (r *DriverRepository) ListAssignable(ctx context.Context) ([]driver.Driver, error) {
	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE status IN ('ON_DUTY', 'OFF_DUTY')
		  AND license_expiry_date >= CURRENT_DATE
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable drivers: %w", err)
	}
	defer rows.Close()

	var out []driver.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *DriverRepository) existsBy(ctx context.Context, column, value string) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM drivers WHERE %s = $1)`, column)
	if err := r.db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check driver %s: %w", column, err)
	}
	return exists, nil
}

func (r *DriverRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.existsBy(ctx, "employee_id", employeeID)
}

func (r *DriverRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.existsBy(ctx, "phone", phone)
}

func (r *DriverRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsBy(ctx, "email", email)
}

func (r *DriverRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	return r.existsBy(ctx, "license_number", licenseNumber)
}

func (r *DriverRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*driver.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1 FOR UPDATE`

	d, err := scanDriver(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("driver %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}
	return d, nil
}

func (r *DriverRepository) UpdateTx(ctx context.Context, tx pgx.Tx, d *driver.Driver) error {
	query := `UPDATE drivers SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING updated_at`

	err := tx.QueryRow(ctx, query, d.ID, d.Status).Scan(&d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("driver %s not found", d.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update driver in tx: %w", err)
	}
	return nil
}

func (r *DriverRepository) CountByStatus(ctx context.Context) (map[driver.Status]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM drivers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count drivers by status: %w", err)
	}
	defer rows.Close()

	out := make(map[driver.Status]int64)
	for rows.Next() {
		var status driver.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan driver status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *DriverRepository) FindByIDs(ctx context.Context, ids []string) (map[string]driver.Driver, error) {
	if len(ids) == 0 {
		return map[string]driver.Driver{}, nil
	}

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find drivers: %w", err)
	}
	defer rows.Close()

	out := make(map[string]driver.Driver)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		out[d.ID] = *d
	}
	return out, rows.Err()
}
