// internal/service/analytics/fakes_test.go
package analytics

import (
	"context"
	"time"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/fuellog"
	"fleetflow-service/internal/domain/maintenance"
	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/domain/vehicle"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type fakeVehicleRepo struct {
	vehicles []vehicle.Vehicle
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *vehicle.Vehicle) error { return nil }

func (r *fakeVehicleRepo) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			v := r.vehicles[i]
			return &v, nil
		}
	}
	return nil, xerrors.NotFoundf("vehicle %s not found", id)
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *vehicle.Vehicle) error { return nil }

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
	return nil
}

func (r *fakeVehicleRepo) CountByStatus(ctx context.Context) (map[vehicle.Status]int64, error) {
	out := make(map[vehicle.Status]int64)
	for _, v := range r.vehicles {
		out[v.Status]++
	}
	return out, nil
}

func (r *fakeVehicleRepo) FindByIDs(ctx context.Context, ids []string) ([]vehicle.Vehicle, error) {
	var out []vehicle.Vehicle
	for _, id := range ids {
		if v, err := r.FindByID(ctx, id); err == nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) ListAll(ctx context.Context, vehicleID string) ([]vehicle.Vehicle, error) {
	if vehicleID == "" {
		return r.vehicles, nil
	}
	var out []vehicle.Vehicle
	for _, v := range r.vehicles {
		if v.ID == vehicleID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeDriverRepo struct {
	drivers []driver.Driver
}

func (r *fakeDriverRepo) Create(ctx context.Context, d *driver.Driver) error { return nil }

func (r *fakeDriverRepo) FindByID(ctx context.Context, id string) (*driver.Driver, error) {
	for i := range r.drivers {
		if r.drivers[i].ID == id {
			d := r.drivers[i]
			return &d, nil
		}
	}
	return nil, xerrors.NotFoundf("driver %s not found", id)
}

func (r *fakeDriverRepo) Update(ctx context.Context, d *driver.Driver) error { return nil }

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
	return nil
}

func (r *fakeDriverRepo) CountByStatus(ctx context.Context) (map[driver.Status]int64, error) {
	out := make(map[driver.Status]int64)
	for _, d := range r.drivers {
		out[d.Status]++
	}
	return out, nil
}

func (r *fakeDriverRepo) FindByIDs(ctx context.Context, ids []string) (map[string]driver.Driver, error) {
	out := make(map[string]driver.Driver)
	for _, id := range ids {
		if d, err := r.FindByID(ctx, id); err == nil {
			out[id] = *d
		}
	}
	return out, nil
}

type fakeTripRepo struct {
	trips []trip.Trip
}

func (r *fakeTripRepo) CreateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error { return nil }

func (r *fakeTripRepo) FindByID(ctx context.Context, id string) (*trip.Trip, error) {
	return nil, xerrors.NotFoundf("trip %s not found", id)
}

func (r *fakeTripRepo) List(ctx context.Context, filters trip.ListFilters) ([]trip.Trip, int64, error) {
	return nil, 0, nil
}

func (r *fakeTripRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*trip.Trip, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeTripRepo) UpdateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error { return nil }

func (r *fakeTripRepo) NextSequence(ctx context.Context, tx pgx.Tx, prefix string) (int, error) {
	return 1, nil
}

func (r *fakeTripRepo) CountByStatus(ctx context.Context) (map[trip.Status]int64, error) {
	out := make(map[trip.Status]int64)
	for _, t := range r.trips {
		out[t.Status]++
	}
	return out, nil
}

func (r *fakeTripRepo) CompletedAll(ctx context.Context) ([]trip.Trip, error) {
	var out []trip.Trip
	for _, t := range r.trips {
		if t.Status == trip.StatusCompleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) CompletedBetween(ctx context.Context, from, to time.Time) ([]trip.Trip, error) {
	var out []trip.Trip
	for _, t := range r.trips {
		if t.Status != trip.StatusCompleted || t.CompletedAt == nil {
			continue
		}
		if !t.CompletedAt.Before(from) && t.CompletedAt.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) CompletedByVehicle(ctx context.Context, vehicleID string) ([]trip.Trip, error) {
	all, _ := r.CompletedAll(ctx)
	var out []trip.Trip
	for _, t := range all {
		if t.VehicleID == vehicleID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) CompletedByDriver(ctx context.Context, driverID string) ([]trip.Trip, error) {
	all, _ := r.CompletedAll(ctx)
	var out []trip.Trip
	for _, t := range all {
		if t.DriverID == driverID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeMaintenanceRepo struct {
	logs []maintenance.MaintenanceLog
}

func (r *fakeMaintenanceRepo) CreateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	return nil
}

func (r *fakeMaintenanceRepo) FindByID(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	return nil, xerrors.NotFoundf("maintenance log %s not found", id)
}

func (r *fakeMaintenanceRepo) Update(ctx context.Context, m *maintenance.MaintenanceLog) error {
	return nil
}

func (r *fakeMaintenanceRepo) List(ctx context.Context, filters maintenance.ListFilters) ([]maintenance.MaintenanceLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeMaintenanceRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*maintenance.MaintenanceLog, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeMaintenanceRepo) UpdateTx(ctx context.Context, tx pgx.Tx, m *maintenance.MaintenanceLog) error {
	return nil
}

func (r *fakeMaintenanceRepo) CountOpenForVehicleTx(ctx context.Context, tx pgx.Tx, vehicleID, excludeID string) (int64, error) {
	return 0, nil
}

func (r *fakeMaintenanceRepo) CountByStatus(ctx context.Context) (map[maintenance.Status]int64, error) {
	out := make(map[maintenance.Status]int64)
	for _, m := range r.logs {
		out[m.Status]++
	}
	return out, nil
}

type fakeFuelRepo struct {
	logs []fuellog.FuelLog
}

func (r *fakeFuelRepo) CreateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error { return nil }

func (r *fakeFuelRepo) FindByID(ctx context.Context, id string) (*fuellog.FuelLog, error) {
	return nil, xerrors.NotFoundf("fuel log %s not found", id)
}

func (r *fakeFuelRepo) List(ctx context.Context, filters fuellog.ListFilters) ([]fuellog.FuelLog, int64, error) {
	return nil, 0, nil
}

func (r *fakeFuelRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*fuellog.FuelLog, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeFuelRepo) UpdateTx(ctx context.Context, tx pgx.Tx, f *fuellog.FuelLog) error {
	return nil
}

func (r *fakeFuelRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]fuellog.FuelLog, error) {
	var out []fuellog.FuelLog
	for _, f := range r.logs {
		if f.VehicleID == vehicleID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFuelRepo) ListAll(ctx context.Context) ([]fuellog.FuelLog, error) {
	return r.logs, nil
}

type fakeExpenseRepo struct {
	expenses []expense.Expense
}

func (r *fakeExpenseRepo) CreateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	return nil
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	return nil, xerrors.NotFoundf("expense %s not found", id)
}

func (r *fakeExpenseRepo) List(ctx context.Context, filters expense.ListFilters) ([]expense.Expense, int64, error) {
	return nil, 0, nil
}

func (r *fakeExpenseRepo) LockByID(ctx context.Context, tx pgx.Tx, id string) (*expense.Expense, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeExpenseRepo) UpdateTx(ctx context.Context, tx pgx.Tx, e *expense.Expense) error {
	return nil
}

func (r *fakeExpenseRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if e.VehicleID != nil && *e.VehicleID == vehicleID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) IncurredBetween(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if !e.IncurredAt.Before(from) && e.IncurredAt.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) ListAll(ctx context.Context) ([]expense.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepo) ListByMaintenanceLog(ctx context.Context, maintenanceLogID string) ([]expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) SummaryByCategory(ctx context.Context) ([]expense.CategorySummary, error) {
	return nil, nil
}
