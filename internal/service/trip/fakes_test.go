// internal/service/trip/fakes_test.go
package trip

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/domain/vehicle"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies TxRunner without a database; the callback receives a nil
// transaction, which the fake repositories ignore.
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

// ---- vehicle repository ----

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
	out := make(map[vehicle.Status]int64)
	for _, v := range r.vehicles {
		out[v.Status]++
	}
	return out, nil
}

func (r *fakeVehicleRepo) FindByIDs(ctx context.Context, ids []string) ([]vehicle.Vehicle, error) {
	var out []vehicle.Vehicle
	for _, id := range ids {
		if v, ok := r.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) ListAll(ctx context.Context, vehicleID string) ([]vehicle.Vehicle, error) {
	var out []vehicle.Vehicle
	for _, v := range r.vehicles {
		if vehicleID == "" || v.ID == vehicleID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ---- driver repository ----

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
	out := make(map[driver.Status]int64)
	for _, d := range r.drivers {
		out[d.Status]++
	}
	return out, nil
}

func (r *fakeDriverRepo) FindByIDs(ctx context.Context, ids []string) (map[string]driver.Driver, error) {
	out := make(map[string]driver.Driver)
	for _, id := range ids {
		if d, ok := r.drivers[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

// ---- trip repository ----

type fakeTripRepo struct {
	trips  map[string]trip.Trip
	nextID int
}

func newFakeTripRepo(ts ...trip.Trip) *fakeTripRepo {
	r := &fakeTripRepo{trips: make(map[string]trip.Trip)}
	for _, t := range ts {
		r.trips[t.ID] = t
	}
	return r
}

func (r *fakeTripRepo) CreateTx(ctx context.Context, tx pgx.Tx, t *trip.Trip) error {
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("trip-%d", r.nextID)
	}
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
	max := 0
	for _, t := range r.trips {
		if !strings.HasPrefix(t.TripNumber, prefix) {
			continue
		}
		if seq, err := strconv.Atoi(strings.TrimPrefix(t.TripNumber, prefix)); err == nil && seq > max {
			max = seq
		}
	}
	return max + 1, nil
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
	return r.CompletedAll(ctx)
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
