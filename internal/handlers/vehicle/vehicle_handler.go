// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"

	"fleetflow-service/internal/domain/vehicle"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle registers a new vehicle (manager only)
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle created successfully", result)
}

// GetVehicle returns a single vehicle
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	result, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", result)
}

// UpdateVehicle applies a partial update (manager only)
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle updated successfully", result)
}

// RetireVehicle moves a vehicle to RETIRED (manager only)
func (h *VehicleHandler) RetireVehicle(c *gin.Context) {
	result, err := h.vehicleService.RetireVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retired successfully", result)
}

// ListVehicles returns a paginated vehicle list
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filters vehicle.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.vehicleService.ListVehicles(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "vehicles retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}
