// internal/service/analytics/analytics.go
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"fleetflow-service/internal/domain/analytics"
	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/domain/maintenance"
	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/domain/vehicle"

	"go.uber.org/zap"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/domain/fuellog"
)

// AnalyticsService folds raw rows into report structures. All ratios are nil
// when their denominator is zero; aggregates round to two decimals and
// cost-per-km ratios to four.
type AnalyticsService struct {
	vehicleRepo     vehicle.Repository
	driverRepo      driver.Repository
	tripRepo        trip.Repository
	maintenanceRepo maintenance.Repository
	fuelRepo        fuellog.Repository
	expenseRepo     expense.Repository
	logger          *zap.Logger
}

func NewAnalyticsService(
	vehicleRepo vehicle.Repository,
	driverRepo driver.Repository,
	tripRepo trip.Repository,
	maintenanceRepo maintenance.Repository,
	fuelRepo fuellog.Repository,
	expenseRepo expense.Repository,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		vehicleRepo:     vehicleRepo,
		driverRepo:      driverRepo,
		tripRepo:        tripRepo,
		maintenanceRepo: maintenanceRepo,
		fuelRepo:        fuelRepo,
		expenseRepo:     expenseRepo,
		logger:          logger,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ratio2 returns num/den rounded to two decimals, nil on a zero denominator.
func ratio2(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	r := round2(num / den)
	return &r
}

func ratio4(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	r := round4(num / den)
	return &r
}

// FleetSummary is the live dashboard snapshot. Utilization counts ON_TRIP
// vehicles against the non-retired fleet.
func (s *AnalyticsService) FleetSummary(ctx context.Context) (*analytics.FleetSummary, error) {
	vehicles, err := s.vehicleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}
	drivers, err := s.driverRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count drivers: %w", err)
	}
	trips, err := s.tripRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}
	logs, err := s.maintenanceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	summary := &analytics.FleetSummary{
		VehiclesByStatus: make(map[string]int64, len(vehicles)),
		DriversByStatus:  make(map[string]int64, len(drivers)),
		TripsByStatus:    make(map[string]int64, len(trips)),
	}

	var active int64
	for status, count := range vehicles {
		summary.VehiclesByStatus[string(status)] = count
		summary.TotalVehicles += count
	}
	for status, count := range drivers {
		summary.DriversByStatus[string(status)] = count
		summary.TotalDrivers += count
	}
	for status, count := range trips {
		summary.TripsByStatus[string(status)] = count
		if status == trip.StatusDispatched {
			active = count
		}
	}
	summary.ActiveTrips = active
	summary.OpenMaintenance = logs[maintenance.StatusScheduled] + logs[maintenance.StatusInProgress]

	// Utilization over the non-retired fleet; 0 rather than null when the
	// whole fleet is retired.
	inService := summary.TotalVehicles - vehicles[vehicle.StatusRetired]
	if inService > 0 {
		summary.UtilizationPercent = round2(float64(vehicles[vehicle.StatusOnTrip]) * 100 / float64(inService))
	}

	return summary, nil
}

// VehicleUtilization reports completed-trip mileage per vehicle. An empty
// vehicleID covers the whole fleet.
func (s *AnalyticsService) VehicleUtilization(ctx context.Context, vehicleID string) ([]analytics.VehicleUtilization, error) {
	vehicles, err := s.vehicleRepo.ListAll(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	completed, err := s.completedTrips(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	type agg struct {
		trips    int64
		distance float64
	}
	byVehicle := make(map[string]*agg)
	for _, t := range completed {
		a := byVehicle[t.VehicleID]
		if a == nil {
			a = &agg{}
			byVehicle[t.VehicleID] = a
		}
		a.trips++
		if t.DistanceKm != nil {
			a.distance += *t.DistanceKm
		}
	}

	out := make([]analytics.VehicleUtilization, 0, len(vehicles))
	for _, v := range vehicles {
		row := analytics.VehicleUtilization{
			VehicleID:    v.ID,
			LicensePlate: v.LicensePlate,
			Status:       string(v.Status),
		}
		if a := byVehicle[v.ID]; a != nil {
			row.CompletedTrips = a.trips
			row.TotalDistanceKm = round2(a.distance)
			row.AvgDistancePerTrip = ratio2(a.distance, float64(a.trips))
		}
		out = append(out, row)
	}
	return out, nil
}

// FuelEfficiency reports km per liter and fuel cost per km per vehicle.
// Distance is measured between consecutive fills ordered by odometer
// reading; only positive deltas count, each charging the later fill's
// liters. A single fill leaves no segment to measure, so its ratios are nil.
func (s *AnalyticsService) FuelEfficiency(ctx context.Context, vehicleID string) ([]analytics.FuelEfficiency, error) {
	vehicles, err := s.vehicleRepo.ListAll(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	fills, err := s.fuelLogs(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	fillsByVehicle := make(map[string][]fuellog.FuelLog)
	for _, f := range fills {
		fillsByVehicle[f.VehicleID] = append(fillsByVehicle[f.VehicleID], f)
	}

	out := make([]analytics.FuelEfficiency, 0, len(vehicles))
	for _, v := range vehicles {
		row := analytics.FuelEfficiency{
			VehicleID:    v.ID,
			LicensePlate: v.LicensePlate,
		}

		vehicleFills := fillsByVehicle[v.ID]
		sort.Slice(vehicleFills, func(i, j int) bool {
			return vehicleFills[i].OdometerAtFillKm < vehicleFills[j].OdometerAtFillKm
		})

		var totalKm, totalLiters, totalCost float64
		var segments int64
		for i, f := range vehicleFills {
			totalCost += f.TotalCost
			if i == 0 {
				continue
			}
			km := f.OdometerAtFillKm - vehicleFills[i-1].OdometerAtFillKm
			if km > 0 {
				totalKm += km
				totalLiters += f.Liters
				segments++
			}
		}

		row.FillCount = int64(len(vehicleFills))
		row.Segments = segments
		row.TotalKm = round2(totalKm)
		row.TotalLiters = round2(totalLiters)
		row.TotalFuelCost = round2(totalCost)
		row.KmPerLiter = ratio2(totalKm, totalLiters)
		row.CostPerKm = ratio4(totalCost, totalKm)
		out = append(out, row)
	}
	return out, nil
}

// CostPerKm reports all-category running cost per vehicle against the
// vehicle's lifetime odometer reading, nil when the odometer is still 0.
func (s *AnalyticsService) CostPerKm(ctx context.Context, vehicleID string) ([]analytics.VehicleCost, error) {
	vehicles, err := s.vehicleRepo.ListAll(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	costByVehicle := make(map[string]map[string]float64)
	for _, e := range expenses {
		if e.VehicleID == nil {
			continue
		}
		byCat := costByVehicle[*e.VehicleID]
		if byCat == nil {
			byCat = make(map[string]float64)
			costByVehicle[*e.VehicleID] = byCat
		}
		byCat[string(e.Category)] += e.Amount
	}

	out := make([]analytics.VehicleCost, 0, len(vehicles))
	for _, v := range vehicles {
		row := analytics.VehicleCost{
			VehicleID:    v.ID,
			LicensePlate: v.LicensePlate,
			OdometerKm:   round2(v.OdometerKm),
			ByCategory:   make(map[string]float64),
		}
		var total float64
		for cat, amount := range costByVehicle[v.ID] {
			row.ByCategory[cat] = round2(amount)
			total += amount
		}
		row.TotalCost = round2(total)
		row.CostPerKm = ratio4(total, v.OdometerKm)
		out = append(out, row)
	}
	return out, nil
}

// DriverPerformance reports completed-trip mileage per driver. Drivers with
// no completed trips appear only when asked for by ID.
func (s *AnalyticsService) DriverPerformance(ctx context.Context, driverID string) ([]analytics.DriverPerformance, error) {
	var completed []trip.Trip
	var err error
	if driverID != "" {
		completed, err = s.tripRepo.CompletedByDriver(ctx, driverID)
	} else {
		completed, err = s.tripRepo.CompletedAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	type agg struct {
		trips    int64
		distance float64
	}
	byDriver := make(map[string]*agg)
	for _, t := range completed {
		a := byDriver[t.DriverID]
		if a == nil {
			a = &agg{}
			byDriver[t.DriverID] = a
		}
		a.trips++
		if t.DistanceKm != nil {
			a.distance += *t.DistanceKm
		}
	}

	ids := make([]string, 0, len(byDriver))
	for id := range byDriver {
		ids = append(ids, id)
	}
	if driverID != "" {
		ids = []string{driverID}
	}
	sort.Strings(ids)

	drivers, err := s.driverRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]analytics.DriverPerformance, 0, len(ids))
	for _, id := range ids {
		d, ok := drivers[id]
		if !ok {
			continue
		}
		row := analytics.DriverPerformance{
			DriverID:    d.ID,
			Name:        d.FullName(),
			SafetyScore: d.SafetyScore,
		}
		if a := byDriver[id]; a != nil {
			row.CompletedTrips = a.trips
			row.TotalDistanceKm = round2(a.distance)
			row.AvgDistanceKm = ratio2(a.distance, float64(a.trips))
		}
		out = append(out, row)
	}
	return out, nil
}

// VehicleROI reports lifetime cost of ownership against completed-trip
// distance: acquisition cost plus every expense booked to the vehicle.
func (s *AnalyticsService) VehicleROI(ctx context.Context, vehicleID string) ([]analytics.VehicleROI, error) {
	vehicles, err := s.vehicleRepo.ListAll(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	completed, err := s.completedTrips(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	kmByVehicle := make(map[string]float64)
	for _, t := range completed {
		if t.DistanceKm != nil {
			kmByVehicle[t.VehicleID] += *t.DistanceKm
		}
	}

	costByVehicle := make(map[string]float64)
	for _, e := range expenses {
		if e.VehicleID != nil {
			costByVehicle[*e.VehicleID] += e.Amount
		}
	}

	out := make([]analytics.VehicleROI, 0, len(vehicles))
	for _, v := range vehicles {
		operating := costByVehicle[v.ID]
		total := v.AcquisitionCost + operating
		out = append(out, analytics.VehicleROI{
			VehicleID:       v.ID,
			LicensePlate:    v.LicensePlate,
			AcquisitionCost: round2(v.AcquisitionCost),
			OperatingCost:   round2(operating),
			TotalCost:       round2(total),
			TotalKm:         round2(kmByVehicle[v.ID]),
			CostPerKm:       ratio4(total, kmByVehicle[v.ID]),
		})
	}
	return out, nil
}

// TripsSummary reports trip counts by status plus completed-trip distance
// aggregates and the overall completion rate.
func (s *AnalyticsService) TripsSummary(ctx context.Context) (*analytics.TripsSummary, error) {
	counts, err := s.tripRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count trips: %w", err)
	}
	completed, err := s.tripRepo.CompletedAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &analytics.TripsSummary{
		ByStatus: make(map[string]int64, len(counts)),
	}
	for status, count := range counts {
		summary.ByStatus[string(status)] = count
		summary.Total += count
	}
	summary.Completed = counts[trip.StatusCompleted]

	var distance float64
	for _, t := range completed {
		if t.DistanceKm != nil {
			distance += *t.DistanceKm
		}
	}
	summary.TotalDistanceKm = round2(distance)
	summary.AvgDistanceKm = ratio2(distance, float64(summary.Completed))
	summary.CompletionRate = ratio2(float64(summary.Completed)*100, float64(summary.Total))

	return summary, nil
}

// MonthlyExpenses buckets expenses by calendar month over [from, to).
func (s *AnalyticsService) MonthlyExpenses(ctx context.Context, from, to time.Time) (*analytics.MonthlyExpenseReport, error) {
	expenses, err := s.expenseRepo.IncurredBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*analytics.MonthlyExpense)
	var grand float64
	for _, e := range expenses {
		month := e.IncurredAt.UTC().Format("2006-01")
		bucket := byMonth[month]
		if bucket == nil {
			bucket = &analytics.MonthlyExpense{
				Month:      month,
				ByCategory: make(map[string]float64),
			}
			byMonth[month] = bucket
		}
		bucket.Total += e.Amount
		bucket.ByCategory[string(e.Category)] += e.Amount
		grand += e.Amount
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	report := &analytics.MonthlyExpenseReport{
		From:   from.UTC().Format("2006-01-02"),
		To:     to.UTC().Format("2006-01-02"),
		Months: make([]analytics.MonthlyExpense, 0, len(months)),
		Total:  round2(grand),
	}
	for _, m := range months {
		bucket := byMonth[m]
		bucket.Total = round2(bucket.Total)
		for cat, amount := range bucket.ByCategory {
			bucket.ByCategory[cat] = round2(amount)
		}
		report.Months = append(report.Months, *bucket)
	}
	return report, nil
}

func (s *AnalyticsService) completedTrips(ctx context.Context, vehicleID string) ([]trip.Trip, error) {
	if vehicleID != "" {
		return s.tripRepo.CompletedByVehicle(ctx, vehicleID)
	}
	return s.tripRepo.CompletedAll(ctx)
}

func (s *AnalyticsService) fuelLogs(ctx context.Context, vehicleID string) ([]fuellog.FuelLog, error) {
	if vehicleID != "" {
		return s.fuelRepo.ListByVehicle(ctx, vehicleID)
	}
	return s.fuelRepo.ListAll(ctx)
}

func (s *AnalyticsService) expenses(ctx context.Context, vehicleID string) ([]expense.Expense, error) {
	if vehicleID != "" {
		return s.expenseRepo.ListByVehicle(ctx, vehicleID)
	}
	return s.expenseRepo.ListAll(ctx)
}
