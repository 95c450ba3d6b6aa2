package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"garage/internal/auth"
	"garage/internal/cache"
	"garage/internal/config"
	"garage/internal/db"
	"garage/internal/handler"
	"garage/internal/model"
	"garage/internal/repository"
	"garage/internal/router"
	"garage/internal/service"
)

// @title Vehicle Service Shop API
// @version 1.0
// @description Backend for a vehicle-service shop: clients, vehicles and work orders with role-gated JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models; FK constraints carry the cascades.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Vehicle{},
		&model.WorkOrder{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	workOrderRepo := repository.NewWorkOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo, clientRepo)
	workOrderService := service.NewWorkOrderService(workOrderRepo, clientRepo, vehicleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService, vehicleService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	workOrderHandler := handler.NewWorkOrderHandler(workOrderService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		clientHandler,
		vehicleHandler,
		workOrderHandler,
	)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
