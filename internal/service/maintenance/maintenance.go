// internal/service/maintenance/maintenance.go
package maintenance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/maintenance"
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

type MaintenanceService struct {
	tx              TxRunner
	maintenanceRepo maintenance.Repository
	vehicleRepo     vehicle.Repository
	expenseRepo     expense.Repository
	publisher       events.Publisher
	logger          *zap.Logger
	now             func() time.Time
}

func NewMaintenanceService(
	tx TxRunner,
	maintenanceRepo maintenance.Repository,
	vehicleRepo vehicle.Repository,
	expenseRepo expense.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		tx:              tx,
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		expenseRepo:     expenseRepo,
		publisher:       publisher,
		logger:          logger,
		now:             time.Now,
	}
}

func validMaintenanceType(t string) bool {
	for _, v := range maintenance.ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ScheduleMaintenance creates a SCHEDULED log and pulls the vehicle into the
// shop. A vehicle already IN_SHOP simply accumulates another open log.
func (s *MaintenanceService) ScheduleMaintenance(ctx context.Context, req *maintenance.CreateMaintenanceRequest) (*maintenance.MaintenanceLog, error) {
	if !validMaintenanceType(req.MaintenanceType) {
		return nil, xerrors.InvalidInputf("invalid maintenance type %q, must be one of: %s",
			req.MaintenanceType, strings.Join(maintenance.ValidTypes, ", "))
	}

	m := &maintenance.MaintenanceLog{
		VehicleID:       req.VehicleID,
		MaintenanceType: maintenance.Type(req.MaintenanceType),
		Description:     req.Description,
		Status:          maintenance.StatusScheduled,
		ScheduledDate:   req.ScheduledDate,
		OdometerKm:      req.OdometerKm,
		VendorName:      req.VendorName,
		InvoiceNumber:   req.InvoiceNumber,
		Notes:           req.Notes,
	}
	if req.LaborCost != nil {
		m.LaborCost = *req.LaborCost
	}
	if req.PartsCost != nil {
		m.PartsCost = *req.PartsCost
	}

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		v, err := s.vehicleRepo.LockByID(ctx, tx, req.VehicleID)
		if err != nil {
			return err
		}
		if v.Status != vehicle.StatusAvailable && v.Status != vehicle.StatusInShop {
			return xerrors.PreconditionFailedf("vehicle %s is %s, maintenance requires AVAILABLE or IN_SHOP",
				v.ID, v.Status)
		}

		if err := s.maintenanceRepo.CreateTx(ctx, tx, m); err != nil {
			return err
		}

		if v.Status != vehicle.StatusInShop {
			v.Status = vehicle.StatusInShop
			return s.vehicleRepo.UpdateTx(ctx, tx, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeMaintenanceScheduled, m)
	s.logger.Info("maintenance scheduled",
		zap.String("maintenance_id", m.ID),
		zap.String("vehicle_id", m.VehicleID),
	)
	return m, nil
}

// StartMaintenance marks a SCHEDULED log IN_PROGRESS. The vehicle is already
// in the shop, so no vehicle state changes here.
func (s *MaintenanceService) StartMaintenance(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := maintenance.Transitions.Validate(string(m.Status), string(maintenance.StatusInProgress)); err != nil {
		return nil, err
	}

	now := s.now()
	m.Status = maintenance.StatusInProgress
	m.StartedAt = &now
	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance started", zap.String("maintenance_id", m.ID))
	return m, nil
}

// finish closes a log into terminal status and releases the vehicle when it
// holds no other open logs. A non-nil apply mutates the locked log before
// the terminal write.
func (s *MaintenanceService) finish(ctx context.Context, id string, target maintenance.Status, apply func(*maintenance.MaintenanceLog)) (*maintenance.MaintenanceLog, error) {
	var m *maintenance.MaintenanceLog

	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		m, err = s.maintenanceRepo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := maintenance.Transitions.Validate(string(m.Status), string(target)); err != nil {
			return err
		}
		if apply != nil {
			apply(m)
		}

		now := s.now()
		m.Status = target
		if target == maintenance.StatusCompleted {
			m.CompletedAt = &now
		} else {
			m.CancelledAt = &now
		}
		if err := s.maintenanceRepo.UpdateTx(ctx, tx, m); err != nil {
			return err
		}

		open, err := s.maintenanceRepo.CountOpenForVehicleTx(ctx, tx, m.VehicleID, m.ID)
		if err != nil {
			return err
		}
		if open > 0 {
			return nil
		}

		v, err := s.vehicleRepo.LockByID(ctx, tx, m.VehicleID)
		if err != nil {
			return err
		}
		if v.Status != vehicle.StatusInShop {
			return nil
		}
		v.Status = vehicle.StatusAvailable
		return s.vehicleRepo.UpdateTx(ctx, tx, v)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CompleteMaintenance finishes an IN_PROGRESS log. The optional request
// overwrites cost and vendor details, which are often only known once the
// invoice arrives.
func (s *MaintenanceService) CompleteMaintenance(ctx context.Context, id string, req *maintenance.CompleteMaintenanceRequest) (*maintenance.MaintenanceLog, error) {
	m, err := s.finish(ctx, id, maintenance.StatusCompleted, func(m *maintenance.MaintenanceLog) {
		if req == nil {
			return
		}
		if req.LaborCost != nil {
			m.LaborCost = *req.LaborCost
		}
		if req.PartsCost != nil {
			m.PartsCost = *req.PartsCost
		}
		if req.VendorName != nil {
			m.VendorName = req.VendorName
		}
		if req.InvoiceNumber != nil {
			m.InvoiceNumber = req.InvoiceNumber
		}
		if req.Notes != nil {
			m.Notes = req.Notes
		}
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeMaintenanceCompleted, m)
	s.logger.Info("maintenance completed", zap.String("maintenance_id", m.ID))
	return m, nil
}

// CancelMaintenance aborts a SCHEDULED or IN_PROGRESS log.
func (s *MaintenanceService) CancelMaintenance(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	m, err := s.finish(ctx, id, maintenance.StatusCancelled, nil)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TypeMaintenanceCancelled, m)
	s.logger.Info("maintenance cancelled", zap.String("maintenance_id", m.ID))
	return m, nil
}

// UpdateMaintenance edits log details while the log is still open.
func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, id string, req *maintenance.UpdateMaintenanceRequest) (*maintenance.MaintenanceLog, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Terminal() {
		return nil, xerrors.PreconditionFailedf("maintenance log %s is %s and can no longer be edited",
			m.ID, m.Status)
	}

	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		m.ScheduledDate = *req.ScheduledDate
	}
	if req.OdometerKm != nil {
		m.OdometerKm = req.OdometerKm
	}
	if req.LaborCost != nil {
		m.LaborCost = *req.LaborCost
	}
	if req.PartsCost != nil {
		m.PartsCost = *req.PartsCost
	}
	if req.VendorName != nil {
		m.VendorName = req.VendorName
	}
	if req.InvoiceNumber != nil {
		m.InvoiceNumber = req.InvoiceNumber
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}

	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance updated", zap.String("maintenance_id", m.ID))
	return m, nil
}

// AddExpense attaches a MAINTENANCE expense to the log. Allowed in any log
// status: invoices routinely arrive after the work is closed out.
func (s *MaintenanceService) AddExpense(ctx context.Context, id string, req *maintenance.AddExpenseRequest) (*expense.Expense, error) {
	m, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	incurredAt := s.now()
	if req.IncurredAt != nil {
		incurredAt = *req.IncurredAt
	}

	e := &expense.Expense{
		VehicleID:        &m.VehicleID,
		MaintenanceLogID: &m.ID,
		Category:         expense.CategoryMaintenance,
		Amount:           req.Amount,
		Description:      req.Description,
		IncurredAt:       incurredAt,
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		return s.expenseRepo.CreateTx(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance expense recorded",
		zap.String("maintenance_id", m.ID),
		zap.String("expense_id", e.ID),
		zap.Float64("amount", e.Amount),
	)
	return e, nil
}

// ListExpenses returns the expenses recorded against a maintenance log.
func (s *MaintenanceService) ListExpenses(ctx context.Context, id string) ([]expense.Expense, error) {
	if _, err := s.maintenanceRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListByMaintenanceLog(ctx, id)
}

func (s *MaintenanceService) GetMaintenance(ctx context.Context, id string) (*maintenance.MaintenanceLog, error) {
	return s.maintenanceRepo.FindByID(ctx, id)
}

func (s *MaintenanceService) ListMaintenance(ctx context.Context, filters maintenance.ListFilters) ([]maintenance.MaintenanceLog, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.maintenanceRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	return items, params, total, nil
}
