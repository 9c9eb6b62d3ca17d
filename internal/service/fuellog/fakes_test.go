// internal/service/fuellog/fakes_test.go
package fuellog

import (
	"context"
	"fmt"
	"time"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/fuellog"
	"fleetflow-service/internal/domain/trip"
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

type fakeDriverRepo struct {
	drivers map[string]driver.Driver
}

func newFakeDriverRepo(ds ...driver.Driver) *fakeDriverRepo {
	r := &fakeDriverRepo{drivers: make(map[string]driver.Driver)}
	for _, d := range ds {
		r.drivers[d.ID] = d
	}
	return r
}

func (r *fakeDriverRepo) Create(ctx context.Context, d *driver.Driver) error {
	r.drivers[d.ID] = *d
	return nil
}

func (r *fakeDriverRepo) FindByID(ctx context.Context, id string) (*driver.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, xerrors.NotFoundf("driver %s not found", id)
	}
	return &d, nil
}

func (r *fakeDriverRepo) Update(ctx context.Context, d *driver.Driver) error {
	r.drivers[d.ID] = *d
	return nil
}

func (r *fakeDriverRepo) List(ctx context.Context, filters driver.ListFilters) ([]driver.Driver, int64, error) {
	return nil, 0, nil
}

func (r *fakeDriverRepo) ListAssignable(ctx context.Context) ([]driver.Driver, error) {
	return nil, nil
}

func (r *fakeDriverRepo) ExistsByEmployeeID(ctx context.Context, v string) (bool, error) {
	return false, nil
}
func (r *fakeDriverRepo) ExistsByPhone(ctx context.Context, v string) (bool, error) {
	return false, nil
}
func (r *fakeDriverRepo) ExistsByEmail(ctx context.Context, v string) (bool, error) {
	return false, nil
}
func (r *fakeDriverRepo) ExistsByLicenseNumber(ctx context.Context, v string) (bool, error) {
	return false, nil
}

func (r *fakeDriverRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*driver.Driver, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeDriverRepo) UpdateTx(ctx context.Context, tx pgx.Tx, d *driver.Driver) error {
	return r.Update(ctx, d)
}

func (r *fakeDriverRepo) CountByStatus(ctx context.Context) (map[driver.Status]int64, error) {
	return nil, nil
}

func (r *fakeDriverRepo) FindByIDs(ctx context.Context, ids []string) (map[string]driver.Driver, error) {
	return nil, nil
}

type fakeTripRepo struct {
	trips map[string]trip.Trip
}

func newFakeTripRepo(ts ...trip.Trip) *fakeTripRepo {
	r := &fakeTripRepo{trips: make(map[string]trip.Trip)}
	for _, t := range ts {
		r.trips[t.ID] = t
	}
	return r
}

func (r *fakeTripRepo) CreateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error {
	r.trips[t.ID] = *t
	return nil
}

func (r *fakeTripRepo) FindByID(ctx context.Context, id string) (*trip.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, xerrors.NotFoundf("trip %s not found", id)
	}
	return &t, nil
}

func (r *fakeTripRepo) List(ctx context.Context, filters trip.ListFilters) ([]trip.Trip, int64, error) {
	return nil, 0, nil
}

func (r *fakeTripRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*trip.Trip, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeTripRepo) UpdateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error {
	r.trips[t.ID] = *t
	return nil
}

func (r *fakeTripRepo) NextSequence(ctx context.Context, tx pgx.Tx, prefix string) (int, error) {
	return 1, nil
}

func (r *fakeTripRepo) CountByStatus(ctx context.Context) (map[trip.Status]int64, error) {
	return nil, nil
}

func (r *fakeTripRepo) CompletedAll(ctx context.Context) ([]trip.Trip, error) { return nil, nil }

func (r *fakeTripRepo) CompletedBetween(ctx context.Context, from, to time.Time) ([]trip.Trip, error) {
	return nil, nil
}

func (r *fakeTripRepo) CompletedByVehicle(ctx context.Context, vehicleID string) ([]trip.Trip, error) {
	return nil, nil
}

func (r *fakeTripRepo) CompletedByDriver(ctx context.Context, driverID string) ([]trip.Trip, error) {
	return nil, nil
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
	return nil, nil
}

func (r *fakeExpenseRepo) SummaryByCategory(ctx context.Context) ([]expense.CategorySummary, error) {
	return nil, nil
}

type fakeFuelRepo struct {
	logs   map[string]fuellog.FuelLog
	nextID int
}

func newFakeFuelRepo(fs ...fuellog.FuelLog) *fakeFuelRepo {
	r := &fakeFuelRepo{logs: make(map[string]fuellog.FuelLog)}
	for _, f := range fs {
		r.logs[f.ID] = f
	}
	return r
}

func (r *fakeFuelRepo) CreateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error {
	if f.ID == "" {
		r.nextID++
		f.ID = fmt.Sprintf("fuel-%d", r.nextID)
	}
	r.logs[f.ID] = *f
	return nil
}

func (r *fakeFuelRepo) FindByID(ctx context.Context, id string) (*fuellog.FuelLog, error) {
	f, ok := r.logs[id]
	if !ok {
		return nil, xerrors.NotFoundf("fuel log %s not found", id)
	}
	return &f, nil
}

func (r *fakeFuelRepo) List(ctx context.Context, filters fuellog.ListFilters) ([]fuellog.FuelLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeFuelRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*fuellog.FuelLog, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeFuelRepo) UpdateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error {
	r.logs[f.ID] = *f
	return nil
}

func (r *fakeFuelRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]fuellog.FuelLog, error) {
	return nil, nil
}

func (r *fakeFuelRepo) ListAll(ctx context.Context) ([]fuellog.FuelLog, error) {
	return nil, nil
}
