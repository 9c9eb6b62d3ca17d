// internal/service/vehicle/vehicle.go
package vehicle

import (
	"context"
	"fmt"
	"strings"

	"fleetflow-service/internal/domain/vehicle"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/pagination"

	"go.uber.org/zap"
)

type VehicleService struct {
	vehicleRepo vehicle.Repository
	logger      *zap.Logger
}

func NewVehicleService(vehicleRepo vehicle.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func validType(t vehicle.Type) bool {
	for _, v := range vehicle.ValidTypes {
		if v == string(t) {
			return true
		}
	}
	return false
}

// CreateVehicle registers a new vehicle. New vehicles always start AVAILABLE
// with odometer zero unless an odometer reading is supplied later.
func (s *VehicleService) CreateVehicle(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.Vehicle, error) {
	if !validType(req.VehicleType) {
		return nil, xerrors.InvalidInputf("invalid vehicle type %q, must be one of: %s",
			req.VehicleType, strings.Join(vehicle.ValidTypes, ", "))
	}

	plate := strings.ToUpper(strings.TrimSpace(req.LicensePlate))
	exists, err := s.vehicleRepo.ExistsByLicensePlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to check license plate: %w", err)
	}
	if exists {
		return nil, xerrors.Conflictf("vehicle with license plate %s already exists", plate)
	}

	if req.VIN != nil && *req.VIN != "" {
		exists, err := s.vehicleRepo.ExistsByVIN(ctx, *req.VIN)
		if err != nil {
			return nil, fmt.Errorf("failed to check vin: %w", err)
		}
		if exists {
			return nil, xerrors.Conflictf("vehicle with VIN %s already exists", *req.VIN)
		}
	}

	v := &vehicle.Vehicle{
		LicensePlate:    plate,
		VehicleType:     req.VehicleType,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		VIN:             req.VIN,
		Status:          vehicle.StatusAvailable,
		MaxLoadKg:       req.MaxLoadKg,
		AcquisitionDate: req.AcquisitionDate,
	}
	if req.AcquisitionCost != nil {
		v.AcquisitionCost = *req.AcquisitionCost
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("vehicle created",
		zap.String("vehicle_id", v.ID),
		zap.String("license_plate", v.LicensePlate),
	)
	return v, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return s.vehicleRepo.FindByID(ctx, id)
}

// UpdateVehicle applies a partial update. A status field goes through the
// transition graph; the odometer may only move forward.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, req *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != v.Status {
		if err := vehicle.Transitions.Validate(string(v.Status), string(*req.Status)); err != nil {
			return nil, err
		}
		v.Status = *req.Status
	}

	if req.OdometerKm != nil {
		if *req.OdometerKm < v.OdometerKm {
			return nil, xerrors.PreconditionFailedf(
				"odometer cannot decrease: current %.1f km, requested %.1f km",
				v.OdometerKm, *req.OdometerKm,
			)
		}
		v.OdometerKm = *req.OdometerKm
	}

	if req.LicensePlate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*req.LicensePlate))
		if plate != v.LicensePlate {
			exists, err := s.vehicleRepo.ExistsByLicensePlate(ctx, plate)
			if err != nil {
				return nil, fmt.Errorf("failed to check license plate: %w", err)
			}
			if exists {
				return nil, xerrors.Conflictf("vehicle with license plate %s already exists", plate)
			}
			v.LicensePlate = plate
		}
	}

	if req.VehicleType != nil {
		if !validType(*req.VehicleType) {
			return nil, xerrors.InvalidInputf("invalid vehicle type %q, must be one of: %s",
				*req.VehicleType, strings.Join(vehicle.ValidTypes, ", "))
		}
		v.VehicleType = *req.VehicleType
	}
	if req.Make != nil {
		v.Make = *req.Make
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.VIN != nil {
		v.VIN = req.VIN
	}
	if req.MaxLoadKg != nil {
		v.MaxLoadKg = *req.MaxLoadKg
	}
	if req.AcquisitionCost != nil {
		v.AcquisitionCost = *req.AcquisitionCost
	}
	if req.AcquisitionDate != nil {
		v.AcquisitionDate = req.AcquisitionDate
	}

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	s.logger.Info("vehicle updated", zap.String("vehicle_id", v.ID))
	return v, nil
}

// RetireVehicle moves a vehicle to its terminal status. Vehicles are never
// deleted so their history stays queryable.
func (s *VehicleService) RetireVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vehicle.Transitions.Validate(string(v.Status), string(vehicle.StatusRetired)); err != nil {
		return nil, err
	}
	v.Status = vehicle.StatusRetired

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to retire vehicle: %w", err)
	}

	s.logger.Info("vehicle retired", zap.String("vehicle_id", v.ID))
	return v, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context, filters *vehicle.ListFilters) ([]vehicle.Vehicle, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.vehicleRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return items, params, total, nil
}
