// internal/service/fuellog/fuellog.go
package fuellog

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/fuellog"
	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/domain/vehicle"
	"fleetflow-service/internal/events"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/pagination"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

type FuelLogService struct {
	tx          TxRunner
	fuelRepo    fuellog.Repository
	vehicleRepo vehicle.Repository
	driverRepo  driver.Repository
	tripRepo    trip.Repository
	expenseRepo expense.Repository
	publisher   events.Publisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewFuelLogService(
	tx TxRunner,
	fuelRepo fuellog.Repository,
	vehicleRepo vehicle.Repository,
	driverRepo driver.Repository,
	tripRepo trip.Repository,
	expenseRepo expense.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
) *FuelLogService {
	return &FuelLogService{
		tx:          tx,
		fuelRepo:    fuelRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func validFuelType(t string) bool {
	for _, v := range fuellog.ValidFuelTypes {
		if v == t {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateFuelLog records a fill and its linked FUEL expense in one
// transaction. The vehicle odometer advances only when the fill reading is
// ahead of it; out-of-order entries never roll it back.
func (s *FuelLogService) CreateFuelLog(ctx context.Context, req *fuellog.CreateFuelLogRequest) (*fuellog.FuelLog, error) {
	if !validFuelType(req.FuelType) {
		return nil, xerrors.InvalidInputf("invalid fuel type %q, must be one of: %s",
			req.FuelType, strings.Join(fuellog.ValidFuelTypes, ", "))
	}

	if req.DriverID != nil {
		if _, err := s.driverRepo.FindByID(ctx, *req.DriverID); err != nil {
			return nil, err
		}
	}
	if req.TripID != nil {
		if _, err := s.tripRepo.FindByID(ctx, *req.TripID); err != nil {
			return nil, err
		}
	}

	filledAt := s.now()
	if req.FilledAt != nil {
		filledAt = *req.FilledAt
	}
	totalCost := round2(req.Liters * req.PricePerLiter)

	f := &fuellog.FuelLog{
		VehicleID:        req.VehicleID,
		DriverID:         req.DriverID,
		TripID:           req.TripID,
		FuelType:         fuellog.FuelType(req.FuelType),
		Liters:           req.Liters,
		PricePerLiter:    req.PricePerLiter,
		TotalCost:        totalCost,
		OdometerAtFillKm: req.OdometerAtFillKm,
		StationName:      req.StationName,
		FilledAt:         filledAt,
	}

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		v, err := s.vehicleRepo.LockByID(ctx, tx, req.VehicleID)
		if err != nil {
			return err
		}
		if req.OdometerAtFillKm < v.OdometerKm {
			return xerrors.PreconditionFailedf(
				"odometer at fill %.1f km is behind vehicle odometer %.1f km",
				req.OdometerAtFillKm, v.OdometerKm,
			)
		}

		e := &expense.Expense{
			VehicleID:   &v.ID,
			Category:    expense.CategoryFuel,
			Amount:      totalCost,
			Description: fmt.Sprintf("Fuel fill - %s - %.1fL @ %s", f.FuelType, f.Liters, v.LicensePlate),
			IncurredAt:  filledAt,
		}
		if err := s.expenseRepo.CreateTx(ctx, tx, e); err != nil {
			return err
		}

		f.ExpenseID = e.ID
		if err := s.fuelRepo.CreateTx(ctx, tx, f); err != nil {
			return err
		}

		if req.OdometerAtFillKm > v.OdometerKm {
			v.OdometerKm = req.OdometerAtFillKm
			return s.vehicleRepo.UpdateTx(ctx, tx, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeFuelLogged, f)
	s.logger.Info("fuel log created",
		zap.String("fuel_log_id", f.ID),
		zap.String("vehicle_id", f.VehicleID),
		zap.Float64("total_cost", f.TotalCost),
	)
	return f, nil
}

// UpdateFuelLog corrects a fill record. When the recomputed total cost
// changes, the linked expense amount is kept in sync in the same
// transaction. The odometer reading accepts any non-negative value here;
// the vehicle odometer itself is not rewritten for corrections.
func (s *FuelLogService) UpdateFuelLog(ctx context.Context, id string, req *fuellog.UpdateFuelLogRequest) (*fuellog.FuelLog, error) {
	var f *fuellog.FuelLog

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		f, err = s.fuelRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.Liters != nil {
			f.Liters = *req.Liters
		}
		if req.PricePerLiter != nil {
			f.PricePerLiter = *req.PricePerLiter
		}
		if req.OdometerAtFillKm != nil {
			if *req.OdometerAtFillKm < 0 {
				return xerrors.InvalidInputf("odometer at fill cannot be negative")
			}
			f.OdometerAtFillKm = *req.OdometerAtFillKm
		}
		if req.StationName != nil {
			f.StationName = req.StationName
		}

		newTotal := round2(f.Liters * f.PricePerLiter)
		costChanged := newTotal != f.TotalCost
		f.TotalCost = newTotal

		if err := s.fuelRepo.UpdateTx(ctx, tx, f); err != nil {
			return err
		}

		if !costChanged {
			return nil
		}
		e, err := s.expenseRepo.LockByID(ctx, tx, f.ExpenseID)
		if err != nil {
			return err
		}
		e.Amount = newTotal
		return s.expenseRepo.UpdateTx(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("fuel log updated", zap.String("fuel_log_id", f.ID))
	return f, nil
}

func (s *FuelLogService) GetFuelLog(ctx context.Context, id string) (*fuellog.FuelLog, error) {
	return s.fuelRepo.FindByID(ctx, id)
}

// GetExpense returns the expense linked to a fuel log.
func (s *FuelLogService) GetExpense(ctx context.Context, id string) (*expense.Expense, error) {
	f, err := s.fuelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expenseRepo.FindByID(ctx, f.ExpenseID)
}

func (s *FuelLogService) ListFuelLogs(ctx context.Context, filters fuellog.ListFilters) ([]fuellog.FuelLog, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.fuelRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list fuel logs: %w", err)
	}
	return items, params, total, nil
}
