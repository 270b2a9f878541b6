package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dotwatch/dotwatch-api/docs"
	"github.com/dotwatch/dotwatch-api/internal/api/handler"
	"github.com/dotwatch/dotwatch-api/internal/api/middleware"
	"github.com/dotwatch/dotwatch-api/internal/core/service"
	"github.com/dotwatch/dotwatch-api/internal/infrastructure/config"
	mongodb "github.com/dotwatch/dotwatch-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dotwatch/dotwatch-api/internal/infrastructure/db/redis"
	"github.com/dotwatch/dotwatch-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	log := logger.Get()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware (CORS must run before docs and entity routes) ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dotwatch"))
	e.Use(middleware.CORS(cfg.Origins()))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	machineRepo := mongodb.NewMachineRepository(db)
	guard := redisdb.NewCreateGuard(rdb)

	userService := service.NewUserService(userRepo, guard, log)
	adminService := service.NewAdminService(adminRepo, userRepo, guard, log)
	machineService := service.NewMachineService(machineRepo, userRepo, guard, log)

	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	machineHandler := handler.NewMachineHandler(machineService)

	// Auth is a no-op until JWT_SECRET is configured.
	auth := middleware.Auth(cfg.JWTSecret)

	// --- User routes (machine sub-resource nested under /users) ---
	users := e.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/check/:email", userHandler.Check)
	users.POST("/machine", machineHandler.Add, auth)
	users.GET("/machine/:email", machineHandler.List, auth, middleware.EmailScope("email"))
	users.DELETE("/machine/:email/:machineId", machineHandler.Delete, auth, middleware.EmailScope("email"))
	users.PUT("/:email", userHandler.Update, auth, middleware.EmailScope("email"))
	users.DELETE("/:email", userHandler.Delete, auth, middleware.EmailScope("email"))

	// --- Admin routes ---
	admins := e.Group("/admin")
	admins.POST("", adminHandler.Create)
	admins.GET("", adminHandler.List)
	admins.GET("/check/:email", adminHandler.Check)
	admins.GET("/:email", adminHandler.CompanyUsers, auth, middleware.EmailScope("email"))

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	return e
}
