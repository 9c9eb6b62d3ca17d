// internal/handlers/analytics/analytics_handler.go
package analytics

import (
	"net/http"
	"time"

	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/analytics"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// FleetSummary returns the live fleet dashboard snapshot
func (h *AnalyticsHandler) FleetSummary(c *gin.Context) {
	result, err := h.analyticsService.FleetSummary(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fleet summary retrieved", result)
}

// VehicleUtilization returns mileage stats per vehicle
func (h *AnalyticsHandler) VehicleUtilization(c *gin.Context) {
	result, err := h.analyticsService.VehicleUtilization(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle utilization retrieved", result)
}

// FuelEfficiency returns km/L and fuel cost per km per vehicle
func (h *AnalyticsHandler) FuelEfficiency(c *gin.Context) {
	result, err := h.analyticsService.FuelEfficiency(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fuel efficiency retrieved", result)
}

// CostPerKm returns all-category running cost per vehicle
func (h *AnalyticsHandler) CostPerKm(c *gin.Context) {
	result, err := h.analyticsService.CostPerKm(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "cost per km retrieved", result)
}

// DriverPerformance returns trip stats per driver
func (h *AnalyticsHandler) DriverPerformance(c *gin.Context) {
	result, err := h.analyticsService.DriverPerformance(c.Request.Context(), c.Query("driver_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "driver performance retrieved", result)
}

// VehicleROI returns lifetime cost of ownership per vehicle
func (h *AnalyticsHandler) VehicleROI(c *gin.Context) {
	result, err := h.analyticsService.VehicleROI(c.Request.Context(), c.Query("vehicle_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle roi retrieved", result)
}

// TripsSummary returns trip counts and completed-trip distance aggregates
func (h *AnalyticsHandler) TripsSummary(c *gin.Context) {
	result, err := h.analyticsService.TripsSummary(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trips summary retrieved", result)
}

// MonthlyExpenses buckets expenses by month. Defaults to the trailing
// twelve months when no range is given; from/to accept YYYY-MM-DD.
func (h *AnalyticsHandler) MonthlyExpenses(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD", err)
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD", err)
			return
		}
		to = parsed
	}
	if !to.After(from) {
		response.Error(c, http.StatusBadRequest, "'to' must be after 'from'", nil)
		return
	}

	result, err := h.analyticsService.MonthlyExpenses(c.Request.Context(), from, to)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "monthly expenses retrieved", result)
}
