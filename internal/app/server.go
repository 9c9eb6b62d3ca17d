// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fleetflow-service/internal/config"
	"fleetflow-service/internal/db"
	"fleetflow-service/internal/events"
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
	"fleetflow-service/internal/pkg/jwt"
	"fleetflow-service/internal/pkg/ratelimit"
	"fleetflow-service/internal/repository/postgres"
	analyticsService "fleetflow-service/internal/service/analytics"
	authService "fleetflow-service/internal/service/auth"
	driverService "fleetflow-service/internal/service/driver"
	expenseService "fleetflow-service/internal/service/expense"
	fuelService "fleetflow-service/internal/service/fuellog"
	maintenanceService "fleetflow-service/internal/service/maintenance"
	tripService "fleetflow-service/internal/service/trip"
	vehicleService "fleetflow-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	var logger *zap.Logger
	var err error
	if s.cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.NewPostgresPool(ctx, db.PostgresConfig{DSN: s.cfg.DatabaseURL})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to PostgreSQL")

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	logger.Info("connected to Redis")

	// ----- JWT -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Repositories -----
	txDB := postgres.NewDB(pool)
	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	fuelRepo := postgres.NewFuelLogRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	// ----- Event hub -----
	hub := events.NewHub(logger)
	hubCtx, cancelHub := context.WithCancel(ctx)
	defer cancelHub()
	go hub.Run(hubCtx)

	// ----- Services -----
	rateLimiter := ratelimit.NewRateLimiter(redisClient)
	authSvc := authService.NewAuthService(userRepo, jwtManager, rateLimiter, logger)
	vehicleSvc := vehicleService.NewVehicleService(vehicleRepo, logger)
	driverSvc := driverService.NewDriverService(driverRepo, logger)
	tripSvc := tripService.NewTripService(txDB, tripRepo, vehicleRepo, driverRepo, hub, logger)
	maintenanceSvc := maintenanceService.NewMaintenanceService(txDB, maintenanceRepo, vehicleRepo, expenseRepo, hub, logger)
	fuelSvc := fuelService.NewFuelLogService(txDB, fuelRepo, vehicleRepo, driverRepo, tripRepo, expenseRepo, hub, logger)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, logger)
	analyticsSvc := analyticsService.NewAnalyticsService(vehicleRepo, driverRepo, tripRepo, maintenanceRepo, fuelRepo, expenseRepo, logger)

	// ----- Middleware -----
	authMw := middleware.NewAuthMiddleware(jwtManager)
	s.engine.Use(middleware.RecoveryMiddleware(logger))
	s.engine.Use(middleware.LoggingMiddleware(logger))

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:        authHandler.NewAuthHandler(authSvc),
		VehicleHandler:     vehicleHandler.NewVehicleHandler(vehicleSvc),
		DriverHandler:      driverHandler.NewDriverHandler(driverSvc),
		TripHandler:        tripHandler.NewTripHandler(tripSvc),
		MaintenanceHandler: maintenanceHandler.NewMaintenanceHandler(maintenanceSvc),
		FuelLogHandler:     fuelHandler.NewFuelLogHandler(fuelSvc),
		ExpenseHandler:     expenseHandler.NewExpenseHandler(expenseSvc),
		AnalyticsHandler:   analyticsHandler.NewAnalyticsHandler(analyticsSvc),
		WSHandler:          wsHandler.NewEventStreamHandler(hub, jwtManager, logger),
		AuthMiddleware:     authMw,
	}
	SetupRouter(s.engine, handlers)

	s.http = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to drain, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
