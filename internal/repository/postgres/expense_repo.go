// internal/repository/postgres/expense_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow-service/internal/domain/expense"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

const expenseColumns = `id, vehicle_id, maintenance_log_id, category, amount, description,
	       incurred_at, created_at, updated_at`

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID, &e.VehicleID, &e.MaintenanceLogID, &e.Category, &e.Amount, &e.Description,
		&e.IncurredAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) CreateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}

	query := `
		INSERT INTO expenses (
			id, vehicle_id, maintenance_log_id, category, amount, description, incurred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(
		ctx, query,
		e.ID, e.VehicleID, e.MaintenanceLogID, e.Category, e.Amount, e.Description, e.IncurredAt,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("expense %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, filters expense.ListFilters) ([]expense.Expense, int64, error) {
	var conds []string
	var args []interface{}

	if filters.Category != "" {
		args = append(args, filters.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
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
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM expenses"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(
		"SELECT "+expenseColumns+" FROM expenses%s ORDER BY incurred_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		out = append(out, *e)
	}
	return out, total, rows.Err()
}

func (r *ExpenseRepository) LockByID(ctx context.Context, tx pgx.Tx, id string) (*expense.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 FOR UPDATE`

	e, err := scanExpense(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NotFoundf("expense %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) UpdateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	query := `
		UPDATE expenses SET
			amount = $2, description = $3, incurred_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := tx.QueryRow(ctx, query, e.ID, e.Amount, e.Description, e.IncurredAt).Scan(&e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.NotFoundf("expense %s not found", e.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update expense in tx: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) listWhere(ctx context.Context, cond string, args ...interface{}) ([]expense.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	if cond != "" {
		query += " WHERE " + cond
	}
	query += ` ORDER BY incurred_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *ExpenseRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]expense.Expense, error) {
	return r.listWhere(ctx, "vehicle_id = $1", vehicleID)
}

func (r *ExpenseRepository) ListByMaintenanceLog(ctx context.Context, maintenanceLogID string) ([]expense.Expense, error) {
	return r.listWhere(ctx, "maintenance_log_id = $1", maintenanceLogID)
}

func (r *ExpenseRepository) IncurredBetween(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	return r.listWhere(ctx, "incurred_at >= $1 AND incurred_at < $2", from, to)
}

func (r *ExpenseRepository) ListAll(ctx context.Context) ([]expense.Expense, error) {
	return r.listWhere(ctx, "")
}

func (r *ExpenseRepository) SummaryByCategory(ctx context.Context) ([]expense.CategorySummary, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.CategorySummary
	for rows.Next() {
		var s expense.CategorySummary
		if err := rows.Scan(&s.Category, &s.Total, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan expense summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
