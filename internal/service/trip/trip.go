// internal/service/trip/trip.go
package trip

import (
	"context"
	"fmt"
	"time"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/domain/vehicle"
	"fleetflow-service/internal/events"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/pagination"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TxRunner runs fn inside a database transaction, committing only when fn
// returns nil.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

type TripService struct {
	tx          TxRunner
	tripRepo    trip.Repository
	vehicleRepo vehicle.Repository
	driverRepo  driver.Repository
	publisher   events.Publisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewTripService(
	tx TxRunner,
	tripRepo trip.Repository,
	vehicleRepo vehicle.Repository,
	driverRepo driver.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
) *TripService {
	return &TripService{
		tx:          tx,
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// tripNumberPrefix yields "TRP-YYYYMMDD-" for the given instant in UTC.
func tripNumberPrefix(t time.Time) string {
	return "TRP-" + t.UTC().Format("20060102") + "-"
}

func checkAssignment(v *vehicle.Vehicle, d *driver.Driver, cargoKg *float64, now time.Time) error {
	if v.Status != vehicle.StatusAvailable {
		return xerrors.PreconditionFailedf("vehicle %s is %s, not AVAILABLE", v.ID, v.Status)
	}
	if d.Status != driver.StatusOnDuty && d.Status != driver.StatusOffDuty {
		return xerrors.PreconditionFailedf("driver %s is %s and cannot be assigned", d.ID, d.Status)
	}
	if d.LicenseExpired(now) {
		return xerrors.PreconditionFailedf("driver %s license expired on %s",
			d.ID, d.LicenseExpiryDate.Format("2006-01-02"))
	}
	if cargoKg != nil && *cargoKg > v.MaxLoadKg {
		return xerrors.PreconditionFailedf("cargo %.1f kg exceeds vehicle max load %.1f kg",
			*cargoKg, v.MaxLoadKg)
	}
	return nil
}

// CreateTrip validates the assignment and creates a DRAFT trip. The trip
// number is assigned inside the transaction so the per-day sequence read and
// the insert cannot interleave with a concurrent creation.
func (s *TripService) CreateTrip(ctx context.Context, req *trip.CreateTripRequest) (*trip.Trip, error) {
	now := s.now()

	v, err := s.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	d, err := s.driverRepo.FindByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if err := checkAssignment(v, d, req.CargoWeightKg, now); err != nil {
		return nil, err
	}

	t := &trip.Trip{
		VehicleID:     req.VehicleID,
		DriverID:      req.DriverID,
		OriginAddress: req.OriginAddress,
		DestAddress:   req.DestAddress,
		CargoWeightKg: req.CargoWeightKg,
		Status:        trip.StatusDraft,
		ScheduledAt:   req.ScheduledAt,
		Notes:         req.Notes,
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		prefix := tripNumberPrefix(now)
		seq, err := s.tripRepo.NextSequence(ctx, tx, prefix)
		if err != nil {
			return err
		}
		t.TripNumber = fmt.Sprintf("%s%04d", prefix, seq)
		return s.tripRepo.CreateTx(ctx, tx, t)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trip created",
		zap.String("trip_id", t.ID),
		zap.String("trip_number", t.TripNumber),
		zap.String("vehicle_id", t.VehicleID),
		zap.String("driver_id", t.DriverID),
	)
	return t, nil
}

// DispatchTrip moves a DRAFT trip onto the road. All three rows are locked
// and re-validated inside one transaction; a driver must be exactly ON_DUTY
// at dispatch time. The vehicle odometer is snapshotted as the trip start.
func (s *TripService) DispatchTrip(ctx context.Context, id string) (*trip.Trip, error) {
	var t *trip.Trip

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		t, err = s.tripRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := trip.Transitions.Validate(string(t.Status), string(trip.StatusDispatched)); err != nil {
			return err
		}

		v, err := s.vehicleRepo.LockByID(ctx, tx, t.VehicleID)
		if err != nil {
			return err
		}
		d, err := s.driverRepo.LockByID(ctx, tx, t.DriverID)
		if err != nil {
			return err
		}

		now := s.now()
		if v.Status != vehicle.StatusAvailable {
			return xerrors.PreconditionFailedf("vehicle %s is %s, not AVAILABLE", v.ID, v.Status)
		}
		if d.Status != driver.StatusOnDuty {
			return xerrors.PreconditionFailedf("driver %s is %s, must be ON_DUTY to dispatch", d.ID, d.Status)
		}
		if d.LicenseExpired(now) {
			return xerrors.PreconditionFailedf("driver %s license expired on %s",
				d.ID, d.LicenseExpiryDate.Format("2006-01-02"))
		}
		if t.CargoWeightKg != nil && *t.CargoWeightKg > v.MaxLoadKg {
			return xerrors.PreconditionFailedf("cargo %.1f kg exceeds vehicle max load %.1f kg",
				*t.CargoWeightKg, v.MaxLoadKg)
		}

		start := v.OdometerKm
		t.Status = trip.StatusDispatched
		t.DispatchedAt = &now
		t.OdometerStartKm = &start
		if err := s.tripRepo.UpdateTx(ctx, tx, t); err != nil {
			return err
		}

		v.Status = vehicle.StatusOnTrip
		if err := s.vehicleRepo.UpdateTx(ctx, tx, v); err != nil {
			return err
		}

		d.Status = driver.StatusOnTrip
		return s.driverRepo.UpdateTx(ctx, tx, d)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeTripDispatched, t)
	s.logger.Info("trip dispatched",
		zap.String("trip_id", t.ID),
		zap.String("trip_number", t.TripNumber),
	)
	return t, nil
}

// CompleteTrip closes out a DISPATCHED trip. The vehicle odometer advances
// to the end reading and both vehicle and driver return to service.
func (s *TripService) CompleteTrip(ctx context.Context, id string, req *trip.CompleteTripRequest) (*trip.Trip, error) {
	var t *trip.Trip

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		t, err = s.tripRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := trip.Transitions.Validate(string(t.Status), string(trip.StatusCompleted)); err != nil {
			return err
		}
		if t.OdometerStartKm != nil && req.OdometerEndKm < *t.OdometerStartKm {
			return xerrors.PreconditionFailedf("odometer end %.1f km is before trip start %.1f km",
				req.OdometerEndKm, *t.OdometerStartKm)
		}

		v, err := s.vehicleRepo.LockByID(ctx, tx, t.VehicleID)
		if err != nil {
			return err
		}
		d, err := s.driverRepo.LockByID(ctx, tx, t.DriverID)
		if err != nil {
			return err
		}

		now := s.now()
		endKm := req.OdometerEndKm
		t.Status = trip.StatusCompleted
		t.CompletedAt = &now
		t.OdometerEndKm = &endKm
		if req.DistanceKm != nil {
			t.DistanceKm = req.DistanceKm
		} else if t.OdometerStartKm != nil {
			distance := endKm - *t.OdometerStartKm
			t.DistanceKm = &distance
		}
		if req.Notes != nil {
			t.Notes = req.Notes
		}
		if err := s.tripRepo.UpdateTx(ctx, tx, t); err != nil {
			return err
		}

		v.Status = vehicle.StatusAvailable
		if endKm > v.OdometerKm {
			v.OdometerKm = endKm
		}
		if err := s.vehicleRepo.UpdateTx(ctx, tx, v); err != nil {
			return err
		}

		d.Status = driver.StatusOnDuty
		return s.driverRepo.UpdateTx(ctx, tx, d)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeTripCompleted, t)
	s.logger.Info("trip completed",
		zap.String("trip_id", t.ID),
		zap.String("trip_number", t.TripNumber),
	)
	return t, nil
}

// CancelTrip aborts a DRAFT or DISPATCHED trip. Vehicle and driver are
// released only when the trip had actually been dispatched; the vehicle
// odometer is left untouched.
func (s *TripService) CancelTrip(ctx context.Context, id string, req *trip.CancelTripRequest) (*trip.Trip, error) {
	var t *trip.Trip

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		t, err = s.tripRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := trip.Transitions.Validate(string(t.Status), string(trip.StatusCancelled)); err != nil {
			return err
		}

		wasDispatched := t.Status == trip.StatusDispatched
		now := s.now()
		t.Status = trip.StatusCancelled
		t.CancelledAt = &now
		if req != nil && req.Reason != nil {
			reason := "Cancelled: " + *req.Reason
			if t.Notes != nil && *t.Notes != "" {
				reason = *t.Notes + "\n" + reason
			}
			t.Notes = &reason
		}
		if err := s.tripRepo.UpdateTx(ctx, tx, t); err != nil {
			return err
		}

		if !wasDispatched {
			return nil
		}

		v, err := s.vehicleRepo.LockByID(ctx, tx, t.VehicleID)
		if err != nil {
			return err
		}
		v.Status = vehicle.StatusAvailable
		if err := s.vehicleRepo.UpdateTx(ctx, tx, v); err != nil {
			return err
		}

		d, err := s.driverRepo.LockByID(ctx, tx, t.DriverID)
		if err != nil {
			return err
		}
		d.Status = driver.StatusOnDuty
		return s.driverRepo.UpdateTx(ctx, tx, d)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeTripCancelled, t)
	s.logger.Info("trip cancelled",
		zap.String("trip_id", t.ID),
		zap.String("trip_number", t.TripNumber),
	)
	return t, nil
}

func (s *TripService) GetTrip(ctx context.Context, id string) (*trip.Trip, error) {
	return s.tripRepo.FindByID(ctx, id)
}

func (s *TripService) ListTrips(ctx context.Context, filters trip.ListFilters) ([]trip.Trip, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.tripRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	return items, params, total, nil
}
