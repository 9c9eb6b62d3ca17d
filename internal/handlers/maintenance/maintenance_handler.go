// internal/handlers/maintenance/maintenance_handler.go
package maintenance

import (
	"net/http"

	"fleetflow-service/internal/domain/maintenance"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/maintenance"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// ScheduleMaintenance creates a SCHEDULED log and pulls the vehicle into the shop
func (h *MaintenanceHandler) ScheduleMaintenance(c *gin.Context) {
	var req maintenance.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.maintenanceService.ScheduleMaintenance(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "maintenance scheduled successfully", result)
}

// StartMaintenance marks a SCHEDULED log IN_PROGRESS
func (h *MaintenanceHandler) StartMaintenance(c *gin.Context) {
	result, err := h.maintenanceService.StartMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance started successfully", result)
}

// CompleteMaintenance finishes an IN_PROGRESS log. The body is optional and
// carries final cost and vendor details.
func (h *MaintenanceHandler) CompleteMaintenance(c *gin.Context) {
	var req maintenance.CompleteMaintenanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request", err)
			return
		}
	}

	result, err := h.maintenanceService.CompleteMaintenance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance completed successfully", result)
}

// CancelMaintenance aborts an open log
func (h *MaintenanceHandler) CancelMaintenance(c *gin.Context) {
	result, err := h.maintenanceService.CancelMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance cancelled successfully", result)
}

// UpdateMaintenance edits log details while the log is open
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	var req maintenance.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.maintenanceService.UpdateMaintenance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance updated successfully", result)
}

// AddExpense attaches a MAINTENANCE expense to the log
func (h *MaintenanceHandler) AddExpense(c *gin.Context) {
	var req maintenance.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.maintenanceService.AddExpense(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "expense recorded successfully", result)
}

// GetMaintenance returns a single log
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	result, err := h.maintenanceService.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance log retrieved", result)
}

// ListExpenses returns the expenses recorded against a log
func (h *MaintenanceHandler) ListExpenses(c *gin.Context) {
	result, err := h.maintenanceService.ListExpenses(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance expenses retrieved", result)
}

// ListMaintenance returns a paginated log list
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	var filters maintenance.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.maintenanceService.ListMaintenance(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "maintenance logs retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}
