// internal/service/fuellog/fuellog_test.go
package fuellog

import (
	"context"
	"testing"
	"time"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/fuellog"
	"fleetflow-service/internal/domain/vehicle"
	"fleetflow-service/internal/events"
	xerrors "fleetflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func testVehicle() vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:           "veh-1",
		LicensePlate: "KBX-123",
		Status:       vehicle.StatusAvailable,
		OdometerKm:   12500,
	}
}

func newTestService(vr *fakeVehicleRepo, fr *fakeFuelRepo, er *fakeExpenseRepo) (*FuelLogService, *fakePublisher) {
	pub := &fakePublisher{}
	svc := NewFuelLogService(fakeTx{}, fr, vr, newFakeDriverRepo(), newFakeTripRepo(), er, pub, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	}
	return svc, pub
}

func fillReq() *fuellog.CreateFuelLogRequest {
	return &fuellog.CreateFuelLogRequest{
		VehicleID:        "veh-1",
		FuelType:         "DIESEL",
		Liters:           45,
		PricePerLiter:    182.499,
		OdometerAtFillKm: 12660,
	}
}

func TestCreateFuelLogLinksExpense(t *testing.T) {
	vr := newFakeVehicleRepo(testVehicle())
	fr := newFakeFuelRepo()
	er := newFakeExpenseRepo()
	svc, pub := newTestService(vr, fr, er)

	f, err := svc.CreateFuelLog(context.Background(), fillReq())
	require.NoError(t, err)

	// 45 * 182.499 = 8212.455, rounded to cents.
	assert.Equal(t, 8212.46, f.TotalCost)
	require.NotEmpty(t, f.ExpenseID)

	e, ok := er.expenses[f.ExpenseID]
	require.True(t, ok)
	assert.Equal(t, expense.CategoryFuel, e.Category)
	assert.Equal(t, f.TotalCost, e.Amount)
	assert.Equal(t, "Fuel fill - DIESEL - 45.0L @ KBX-123", e.Description)
	require.NotNil(t, e.VehicleID)
	assert.Equal(t, "veh-1", *e.VehicleID)
	assert.Equal(t, f.FilledAt, e.IncurredAt)

	assert.Equal(t, 12660.0, vr.vehicles["veh-1"].OdometerKm)
	assert.Equal(t, []string{events.TypeFuelLogged}, pub.events)
}

func TestCreateFuelLogEqualReadingLeavesOdometer(t *testing.T) {
	vr := newFakeVehicleRepo(testVehicle())
	svc, _ := newTestService(vr, newFakeFuelRepo(), newFakeExpenseRepo())

	req := fillReq()
	req.OdometerAtFillKm = 12500
	_, err := svc.CreateFuelLog(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 12500.0, vr.vehicles["veh-1"].OdometerKm)
}

func TestCreateFuelLogRejectsReadingBehindOdometer(t *testing.T) {
	vr := newFakeVehicleRepo(testVehicle())
	er := newFakeExpenseRepo()
	svc, pub := newTestService(vr, newFakeFuelRepo(), er)

	req := fillReq()
	req.OdometerAtFillKm = 12400
	_, err := svc.CreateFuelLog(context.Background(), req)
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindPreconditionFailed))
	assert.Empty(t, er.expenses)
	assert.Empty(t, pub.events)
}

func TestCreateFuelLogRejectsUnknownFuelType(t *testing.T) {
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), newFakeFuelRepo(), newFakeExpenseRepo())

	req := fillReq()
	req.FuelType = "HYDROGEN"
	_, err := svc.CreateFuelLog(context.Background(), req)
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindInvalidInput))
}

func TestCreateFuelLogUnknownDriverRejected(t *testing.T) {
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), newFakeFuelRepo(), newFakeExpenseRepo())

	req := fillReq()
	req.DriverID = ptr("drv-missing")
	_, err := svc.CreateFuelLog(context.Background(), req)
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindNotFound))
}

func TestUpdateFuelLogSyncsExpenseAmount(t *testing.T) {
	er := newFakeExpenseRepo()
	er.expenses["exp-1"] = expense.Expense{
		ID:       "exp-1",
		Category: expense.CategoryFuel,
		Amount:   8212.46,
	}
	fr := newFakeFuelRepo(fuellog.FuelLog{
		ID:               "fuel-1",
		VehicleID:        "veh-1",
		ExpenseID:        "exp-1",
		FuelType:         fuellog.FuelDiesel,
		Liters:           45,
		PricePerLiter:    182.499,
		TotalCost:        8212.46,
		OdometerAtFillKm: 12660,
	})
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), fr, er)

	f, err := svc.UpdateFuelLog(context.Background(), "fuel-1", &fuellog.UpdateFuelLogRequest{
		Liters: ptr(50.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 9124.95, f.TotalCost)
	assert.Equal(t, 9124.95, er.expenses["exp-1"].Amount)
}

func TestUpdateFuelLogStationOnlyLeavesExpenseAlone(t *testing.T) {
	er := newFakeExpenseRepo()
	er.expenses["exp-1"] = expense.Expense{
		ID:       "exp-1",
		Category: expense.CategoryFuel,
		Amount:   8212.46,
	}
	fr := newFakeFuelRepo(fuellog.FuelLog{
		ID:            "fuel-1",
		VehicleID:     "veh-1",
		ExpenseID:     "exp-1",
		Liters:        45,
		PricePerLiter: 182.499,
		TotalCost:     8212.46,
	})
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), fr, er)

	f, err := svc.UpdateFuelLog(context.Background(), "fuel-1", &fuellog.UpdateFuelLogRequest{
		StationName: ptr("Shell Westlands"),
	})
	require.NoError(t, err)

	require.NotNil(t, f.StationName)
	assert.Equal(t, "Shell Westlands", *f.StationName)
	assert.Equal(t, 8212.46, er.expenses["exp-1"].Amount)
}

func TestUpdateFuelLogRejectsNegativeOdometer(t *testing.T) {
	fr := newFakeFuelRepo(fuellog.FuelLog{
		ID:        "fuel-1",
		VehicleID: "veh-1",
		ExpenseID: "exp-1",
		Liters:    45,
	})
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), fr, newFakeExpenseRepo())

	_, err := svc.UpdateFuelLog(context.Background(), "fuel-1", &fuellog.UpdateFuelLogRequest{
		OdometerAtFillKm: ptr(-1.0),
	})
	require.Error(t, err)
	assert.True(t, xerrors.IsKind(err, xerrors.KindInvalidInput))
}

func TestGetExpenseFollowsFuelLogLink(t *testing.T) {
	er := newFakeExpenseRepo()
	er.expenses["exp-1"] = expense.Expense{
		ID:       "exp-1",
		Category: expense.CategoryFuel,
		Amount:   8212.46,
	}
	fr := newFakeFuelRepo(fuellog.FuelLog{
		ID:        "fuel-1",
		VehicleID: "veh-1",
		ExpenseID: "exp-1",
	})
	svc, _ := newTestService(newFakeVehicleRepo(testVehicle()), fr, er)

	e, err := svc.GetExpense(context.Background(), "fuel-1")
	require.NoError(t, err)
	assert.Equal(t, "exp-1", e.ID)
	assert.Equal(t, 8212.46, e.Amount)

	_, err = svc.GetExpense(context.Background(), "fuel-missing")
	assert.True(t, xerrors.IsKind(err, xerrors.KindNotFound))
}
