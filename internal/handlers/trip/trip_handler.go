// internal/handlers/trip/trip_handler.go
package trip

import (
	"net/http"

	"fleetflow-service/internal/domain/trip"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/trip"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripService *service.TripService
}

func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// CreateTrip creates a DRAFT trip
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req trip.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.tripService.CreateTrip(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "trip created successfully", result)
}

// DispatchTrip moves a DRAFT trip onto the road
func (h *TripHandler) DispatchTrip(c *gin.Context) {
	result, err := h.tripService.DispatchTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trip dispatched successfully", result)
}

// CompleteTrip closes out a DISPATCHED trip
func (h *TripHandler) CompleteTrip(c *gin.Context) {
	var req trip.CompleteTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.tripService.CompleteTrip(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trip completed successfully", result)
}

// CancelTrip aborts a DRAFT or DISPATCHED trip
func (h *TripHandler) CancelTrip(c *gin.Context) {
	var req trip.CancelTripRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.tripService.CancelTrip(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trip cancelled successfully", result)
}

// GetTrip returns a single trip
func (h *TripHandler) GetTrip(c *gin.Context) {
	result, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trip retrieved", result)
}

// ListTrips returns a paginated trip list
func (h *TripHandler) ListTrips(c *gin.Context) {
	var filters trip.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.tripService.ListTrips(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "trips retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}
