// internal/handlers/driver/driver_handler.go
package driver

import (
	"net/http"

	"fleetflow-service/internal/domain/driver"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/driver"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	driverService *service.DriverService
}

func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
	}
}

// CreateDriver registers a new driver (manager only)
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req driver.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.driverService.CreateDriver(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "driver created successfully", result)
}

// GetDriver returns a single driver
func (h *DriverHandler) GetDriver(c *gin.Context) {
	result, err := h.driverService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "driver retrieved", result)
}

// UpdateDriver applies a partial update (manager only)
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var req driver.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.driverService.UpdateDriver(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "driver updated successfully", result)
}

// SetStatus applies a manual duty-status change (manager only)
func (h *DriverHandler) SetStatus(c *gin.Context) {
	var req driver.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.driverService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "driver status updated", result)
}

// ListDrivers returns a paginated driver list
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	var filters driver.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.driverService.ListDrivers(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "drivers retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}

// ListAssignable returns drivers eligible for trip assignment
func (h *DriverHandler) ListAssignable(c *gin.Context) {
	items, err := h.driverService.ListAssignable(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "assignable drivers retrieved", items)
}
