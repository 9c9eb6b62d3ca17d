// internal/handlers/fuellog/fuellog_handler.go
package fuellog

import (
	"net/http"

	"fleetflow-service/internal/domain/fuellog"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/fuellog"

	"github.com/gin-gonic/gin"
)

type FuelLogHandler struct {
	fuelLogService *service.FuelLogService
}

func NewFuelLogHandler(fuelLogService *service.FuelLogService) *FuelLogHandler {
	return &FuelLogHandler{
		fuelLogService: fuelLogService,
	}
}

// CreateFuelLog records a fill and its linked FUEL expense
func (h *FuelLogHandler) CreateFuelLog(c *gin.Context) {
	var req fuellog.CreateFuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.fuelLogService.CreateFuelLog(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "fuel log created successfully", result)
}

// UpdateFuelLog corrects a fill record
func (h *FuelLogHandler) UpdateFuelLog(c *gin.Context) {
	var req fuellog.UpdateFuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.fuelLogService.UpdateFuelLog(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fuel log updated successfully", result)
}

// GetFuelLog returns a single fill record
func (h *FuelLogHandler) GetFuelLog(c *gin.Context) {
	result, err := h.fuelLogService.GetFuelLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fuel log retrieved", result)
}

// GetExpense returns the expense created for a fill
func (h *FuelLogHandler) GetExpense(c *gin.Context) {
	result, err := h.fuelLogService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fuel expense retrieved", result)
}

// ListFuelLogs returns a paginated fill list, newest fill first
func (h *FuelLogHandler) ListFuelLogs(c *gin.Context) {
	var filters fuellog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.fuelLogService.ListFuelLogs(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "fuel logs retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}
