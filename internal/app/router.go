// internal/app/router.go
package app

import (
	analyticsHandler "fleetflow-service/internal/handlers/analytics"
	authHandler "fleetflow-service/internal/handlers/auth"
	driverHandler "fleetflow-service/internal/handlers/driver"
	expenseHandler "fleetflow-service/internal/handlers/expense"
	fuelHandler "fleetflow-service/internal/handlers/fuellog"
	maintenanceHandler "fleetflow-service/internal/handlers/maintenance"
	tripHandler "fleetflow-service/internal/handlers/trip"
	vehicleHandler "fleetflow-service/internal/handlers/vehicle"
	wsHandler "fleetflow-service/internal/handlers/ws"
	"fleetflow-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

const (
	roleManager        = "MANAGER"
	roleDispatcher     = "DISPATCHER"
	roleSafetyOfficer  = "SAFETY_OFFICER"
	roleFinanceAnalyst = "FINANCE_ANALYST"
)

type Handlers struct {
	AuthHandler        *authHandler.AuthHandler
	VehicleHandler     *vehicleHandler.VehicleHandler
	DriverHandler      *driverHandler.DriverHandler
	TripHandler        *tripHandler.TripHandler
	MaintenanceHandler *maintenanceHandler.MaintenanceHandler
	FuelLogHandler     *fuelHandler.FuelLogHandler
	ExpenseHandler     *expenseHandler.ExpenseHandler
	AnalyticsHandler   *analyticsHandler.AnalyticsHandler
	WSHandler          *wsHandler.EventStreamHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)

	// ==================== Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.GetMe)
	}

	manager := h.AuthMiddleware.RequireRole(roleManager)
	dispatch := h.AuthMiddleware.RequireRole(roleManager, roleDispatcher)

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	vehicles.Use(h.AuthMiddleware.Auth())
	{
		vehicles.GET("", h.VehicleHandler.ListVehicles)
		vehicles.GET("/:id", h.VehicleHandler.GetVehicle)
		vehicles.POST("", manager, h.VehicleHandler.CreateVehicle)
		vehicles.PUT("/:id", manager, h.VehicleHandler.UpdateVehicle)
		vehicles.POST("/:id/retire", manager, h.VehicleHandler.RetireVehicle)
	}

	// ==================== Drivers ====================
	drivers := api.Group("/drivers")
	drivers.Use(h.AuthMiddleware.Auth())
	{
		drivers.GET("", h.DriverHandler.ListDrivers)
		drivers.GET("/assignable", h.DriverHandler.ListAssignable)
		drivers.GET("/:id", h.DriverHandler.GetDriver)
		drivers.POST("", manager, h.DriverHandler.CreateDriver)
		drivers.PUT("/:id", manager, h.DriverHandler.UpdateDriver)
		drivers.PUT("/:id/status", manager, h.DriverHandler.SetStatus)
	}

	// ==================== Trips ====================
	trips := api.Group("/trips")
	trips.Use(h.AuthMiddleware.Auth())
	{
		trips.GET("", h.TripHandler.ListTrips)
		trips.GET("/:id", h.TripHandler.GetTrip)
		trips.POST("", dispatch, h.TripHandler.CreateTrip)
		trips.POST("/:id/dispatch", dispatch, h.TripHandler.DispatchTrip)
		trips.POST("/:id/complete", dispatch, h.TripHandler.CompleteTrip)
		trips.POST("/:id/cancel", dispatch, h.TripHandler.CancelTrip)
	}

	// ==================== Maintenance ====================
	logs := api.Group("/maintenance-logs")
	logs.Use(h.AuthMiddleware.Auth())
	{
		logs.GET("", h.MaintenanceHandler.ListMaintenance)
		logs.GET("/:id", h.MaintenanceHandler.GetMaintenance)
		logs.POST("", manager, h.MaintenanceHandler.ScheduleMaintenance)
		logs.PUT("/:id", manager, h.MaintenanceHandler.UpdateMaintenance)
		logs.POST("/:id/start", manager, h.MaintenanceHandler.StartMaintenance)
		logs.POST("/:id/complete", manager, h.MaintenanceHandler.CompleteMaintenance)
		logs.POST("/:id/cancel", manager, h.MaintenanceHandler.CancelMaintenance)
		logs.POST("/:id/expenses", manager, h.MaintenanceHandler.AddExpense)
		logs.GET("/:id/expenses", h.MaintenanceHandler.ListExpenses)
	}

	// ==================== Fuel Logs ====================
	fuel := api.Group("/fuel-logs")
	fuel.Use(h.AuthMiddleware.Auth())
	{
		fuel.GET("", h.FuelLogHandler.ListFuelLogs)
		fuel.GET("/:id", h.FuelLogHandler.GetFuelLog)
		fuel.POST("", dispatch, h.FuelLogHandler.CreateFuelLog)
		fuel.PUT("/:id", dispatch, h.FuelLogHandler.UpdateFuelLog)
		fuel.GET("/:id/expense", h.FuelLogHandler.GetExpense)
	}

	// ==================== Expenses (read-only) ====================
	expenses := api.Group("/expenses")
	expenses.Use(h.AuthMiddleware.Auth())
	{
		expenses.GET("", h.ExpenseHandler.ListExpenses)
		expenses.GET("/summary", h.ExpenseHandler.SummarizeExpenses)
		expenses.GET("/:id", h.ExpenseHandler.GetExpense)
	}

	// ==================== Analytics ====================
	analytics := api.Group("/analytics")
	analytics.Use(h.AuthMiddleware.Auth())
	{
		analytics.GET("/fleet-summary", h.AnalyticsHandler.FleetSummary)
		analytics.GET("/vehicle-utilization", h.AnalyticsHandler.VehicleUtilization)
		analytics.GET("/fuel-efficiency", h.AnalyticsHandler.FuelEfficiency)
		analytics.GET("/cost-per-km", h.AnalyticsHandler.CostPerKm)
		analytics.GET("/driver-performance", h.AnalyticsHandler.DriverPerformance)
		analytics.GET("/monthly-expenses", h.AnalyticsHandler.MonthlyExpenses)
		analytics.GET("/vehicle-roi", h.AnalyticsHandler.VehicleROI)
		analytics.GET("/trips", h.AnalyticsHandler.TripsSummary)
	}
}
