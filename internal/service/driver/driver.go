// internal/service/driver/driver.go
package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetflow-service/internal/domain/driver"
	xerrors "fleetflow-service/internal/pkg/errors"
	"fleetflow-service/internal/pkg/pagination"

	"go.uber.org/zap"
)

type DriverService struct {
	driverRepo driver.Repository
	logger     *zap.Logger
}

func NewDriverService(driverRepo driver.Repository, logger *zap.Logger) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

func validLicenseCategory(c string) bool {
	for _, v := range driver.ValidLicenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// CreateDriver registers a new driver. Drivers start OFF_DUTY with a default
// safety score of 100 unless one is provided.
func (s *DriverService) CreateDriver(ctx context.Context, req *driver.CreateDriverRequest) (*driver.Driver, error) {
	if !validLicenseCategory(req.LicenseCategory) {
		return nil, xerrors.InvalidInputf("invalid license category %q, must be one of: %s",
			req.LicenseCategory, strings.Join(driver.ValidLicenseCategories, ", "))
	}

	checks := []struct {
		name  string
		value string
		fn    func(context.Context, string) (bool, error)
	}{
		{"employee id", req.EmployeeID, s.driverRepo.ExistsByEmployeeID},
		{"phone", req.Phone, s.driverRepo.ExistsByPhone},
		{"email", req.Email, s.driverRepo.ExistsByEmail},
		{"license number", req.LicenseNumber, s.driverRepo.ExistsByLicenseNumber},
	}
	for _, c := range checks {
		exists, err := c.fn(ctx, c.value)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver %s: %w", c.name, err)
		}
		if exists {
			return nil, xerrors.Conflictf("driver with %s %s already exists", c.name, c.value)
		}
	}

	d := &driver.Driver{
		EmployeeID:        req.EmployeeID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Email:             req.Email,
		LicenseNumber:     req.LicenseNumber,
		LicenseCategory:   driver.LicenseCategory(req.LicenseCategory),
		LicenseExpiryDate: req.LicenseExpiryDate,
		SafetyScore:       100,
		Status:            driver.StatusOffDuty,
		HireDate:          req.HireDate,
	}
	if req.SafetyScore != nil {
		d.SafetyScore = *req.SafetyScore
	}

	if err := s.driverRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	s.logger.Info("driver created",
		zap.String("driver_id", d.ID),
		zap.String("employee_id", d.EmployeeID),
	)
	return d, nil
}

func (s *DriverService) GetDriver(ctx context.Context, id string) (*driver.Driver, error) {
	return s.driverRepo.FindByID(ctx, id)
}

func (s *DriverService) UpdateDriver(ctx context.Context, id string, req *driver.UpdateDriverRequest) (*driver.Driver, error) {
	d, err := s.driverRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		d.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		d.LastName = *req.LastName
	}
	if req.Phone != nil && *req.Phone != d.Phone {
		exists, err := s.driverRepo.ExistsByPhone(ctx, *req.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver phone: %w", err)
		}
		if exists {
			return nil, xerrors.Conflictf("driver with phone %s already exists", *req.Phone)
		}
		d.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != d.Email {
		exists, err := s.driverRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver email: %w", err)
		}
		if exists {
			return nil, xerrors.Conflictf("driver with email %s already exists", *req.Email)
		}
		d.Email = *req.Email
	}
	if req.LicenseNumber != nil && *req.LicenseNumber != d.LicenseNumber {
		exists, err := s.driverRepo.ExistsByLicenseNumber(ctx, *req.LicenseNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check driver license number: %w", err)
		}
		if exists {
			return nil, xerrors.Conflictf("driver with license number %s already exists", *req.LicenseNumber)
		}
		d.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseCategory != nil {
		if !validLicenseCategory(*req.LicenseCategory) {
			return nil, xerrors.InvalidInputf("invalid license category %q, must be one of: %s",
				*req.LicenseCategory, strings.Join(driver.ValidLicenseCategories, ", "))
		}
		d.LicenseCategory = driver.LicenseCategory(*req.LicenseCategory)
	}
	if req.LicenseExpiryDate != nil {
		d.LicenseExpiryDate = *req.LicenseExpiryDate
	}
	if req.SafetyScore != nil {
		d.SafetyScore = *req.SafetyScore
	}

	if err := s.driverRepo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}

	s.logger.Info("driver updated", zap.String("driver_id", d.ID))
	return d, nil
}

// SetStatus applies a manual duty-status change through the transition
// graph. ON_TRIP is excluded here: it is only entered by dispatching a trip.
func (s *DriverService) SetStatus(ctx context.Context, id string, requested string) (*driver.Driver, error) {
	d, err := s.driverRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if requested == string(driver.StatusOnTrip) {
		return nil, xerrors.InvalidInputf("drivers enter ON_TRIP only through trip dispatch")
	}

	if err := driver.Transitions.Validate(string(d.Status), requested); err != nil {
		return nil, err
	}

	if requested == string(driver.StatusOnDuty) && d.LicenseExpired(time.Now()) {
		return nil, xerrors.PreconditionFailedf("driver %s license expired on %s",
			d.ID, d.LicenseExpiryDate.Format("2006-01-02"))
	}

	d.Status = driver.Status(requested)
	if err := s.driverRepo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update driver status: %w", err)
	}

	s.logger.Info("driver status changed",
		zap.String("driver_id", d.ID),
		zap.String("status", requested),
	)
	return d, nil
}

func (s *DriverService) ListDrivers(ctx context.Context, filters driver.ListFilters) ([]driver.Driver, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.driverRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list drivers: %w", err)
	}
	return items, params, total, nil
}

// ListAssignable returns drivers currently eligible to take a trip.
func (s *DriverService) ListAssignable(ctx context.Context) ([]driver.Driver, error) {
	return s.driverRepo.ListAssignable(ctx)
}
