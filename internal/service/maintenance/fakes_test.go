// internal/service/maintenance/fakes_test.go
package maintenance

import (
	"context"
	"fmt"
	"time"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/maintenance"
	"fleetflow-service/internal/domain/vehicle"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type fakeTx struct{}

func (fakeTx) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakePublisher struct {
	events []string
}

func (p *fakePublisher) Publish(eventType string, payload interface{}) {
	p.events = append(p.events, eventType)
}

type fakeVehicleRepo struct {
	vehicles map[string]vehicle.Vehicle
}

func newFakeVehicleRepo(vs ...vehicle.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[string]vehicle.Vehicle)}
	for _, v := range vs {
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *vehicle.Vehicle) error {
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, xerrors.NotFoundf("vehicle %s not found", id)
	}
	return &v, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *vehicle.Vehicle) error {
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, filters *vehicle.ListFilters) ([]vehicle.Vehicle, int64, error) {
	return nil, 0, nil
}

func (r *fakeVehicleRepo) ExistsByLicensePlate(ctx context.Context, plate string) (bool, error) {
	return false, nil
}

func (r *fakeVehicleRepo) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	return false, nil
}

func (r *fakeVehicleRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*vehicle.Vehicle, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeVehicleRepo) UpdateTx(ctx context.Context, tx pgx.Tx, v *vehicle.Vehicle) error {
	return r.Update(ctx, v)
}

func (r *fakeVehicleRepo) CountByStatus(ctx context.Context) (map[vehicle.Status]int64, error) {
	return nil, nil
}

func (r *fakeVehicleRepo) FindByIDs(ctx context.Context, ids []string) ([]vehicle.Vehicle, error) {
	return nil, nil
}

func (r *fakeVehicleRepo) ListAll(ctx context.Context, vehicleID string) ([]vehicle.Vehicle, error) {
	return nil, nil
}

type fakeMaintenanceRepo struct {
	logs   map[string]maintenance.MaintenanceLog
	nextID int
}

func newFakeMaintenanceRepo(ms ...maintenance.MaintenanceLog) *fakeMaintenanceRepo {
	r := &fakeMaintenanceRepo{logs: make(map[string]maintenance.MaintenanceLog)}
	for _, m := range ms {
		r.logs[m.ID] = m
	}
	return r
}

func (r *fakeMaintenanceRepo) CreateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	if m.ID == "" {
		r.nextID++
		m.ID = fmt.Sprintf("mnt-%d", r.nextID)
	}
	r.logs[m.ID] = *m
	return nil
}

func (r *fakeMaintenanceRepo) FindByID(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	m, ok := r.logs[id]
	if !ok {
		return nil, xerrors.NotFoundf("maintenance log %s not found", id)
	}
	return &m, nil
}

func (r *fakeMaintenanceRepo) Update(ctx context.Context, m *maintenance.MaintenanceLog) error {
	r.logs[m.ID] = *m
	return nil
}

func (r *fakeMaintenanceRepo) List(ctx context.Context, filters maintenance.ListFilters) ([]maintenance.MaintenanceLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeMaintenanceRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*maintenance.MaintenanceLog, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeMaintenanceRepo) UpdateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	return r.Update(ctx, m)
}

func (r *fakeMaintenanceRepo) CountOpenForVehicleTx(ctx context.Context, tx pgx.Tx, vehicleID, excludeID string) (int64, error) {
	var open int64
	for _, m := range r.logs {
		if m.VehicleID != vehicleID || m.ID == excludeID {
			continue
		}
		if m.Status == maintenance.StatusScheduled || m.Status == maintenance.StatusInProgress {
			open++
		}
	}
	return open, nil
}

func (r *fakeMaintenanceRepo) CountByStatus(ctx context.Context) (map[maintenance.Status]int64, error) {
	out := make(map[maintenance.Status]int64)
	for _, m := range r.logs {
		out[m.Status]++
	}
	return out, nil
}

type fakeExpenseRepo struct {
	expenses map[string]expense.Expense
	nextID   int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]expense.Expense)}
}

func (r *fakeExpenseRepo) CreateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("exp-%d", r.nextID)
	}
	r.expenses[e.ID] = *e
	return nil
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, xerrors.NotFoundf("expense %s not found", id)
	}
	return &e, nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, filters expense.ListFilters) ([]expense.Expense, int64, error) {
	return nil, 0, nil
}

func (r *fakeExpenseRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*expense.Expense, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeExpenseRepo) UpdateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	r.expenses[e.ID] = *e
	return nil
}

func (r *fakeExpenseRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) IncurredBetween(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) ListAll(ctx context.Context) ([]expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) ListByMaintenanceLog(ctx context.Context, maintenanceLogID string) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if e.MaintenanceLogID != nil && *e.MaintenanceLogID == maintenanceLogID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) SummaryByCategory(ctx context.Context) ([]expense.CategorySummary, error) {
	return nil, nil
}
