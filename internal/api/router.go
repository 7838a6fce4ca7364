package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradebitsix/Drive-time/internal/api/handler"
	"github.com/tradebitsix/Drive-time/internal/api/middleware"
	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/service"
	"github.com/tradebitsix/Drive-time/internal/infrastructure/config"
	mongodb "github.com/tradebitsix/Drive-time/internal/infrastructure/db/mongo"
	redisdb "github.com/tradebitsix/Drive-time/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, rules *domain.RuleRegistry, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("drivetime"))

	// --- Dependencies ---
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)

	authService := service.NewAuthService(userRepo, hasher, codec, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	userService := service.NewUserService(userRepo, hasher, log)
	studentService := service.NewStudentService(studentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	studentHandler := handler.NewStudentHandler(studentService)
	dashboardHandler := handler.NewDashboardHandler(studentService)
	rulesHandler := handler.NewRulesHandler(rules)

	authGuard := middleware.Auth(codec, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyStaff := middleware.RBAC(domain.RoleAdmin, domain.RoleInstructor)

	loginLimiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.LoginPerMinute, time.Minute)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter, log))
	authGroup.GET("/me", authHandler.Me, authGuard)

	// --- User administration (admin only) ---
	users := e.Group("/api/users", authGuard, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id/role", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Students (admin or instructor) ---
	students := e.Group("/api/students", authGuard, anyStaff)
	students.GET("", studentHandler.List)
	students.POST("", studentHandler.Create)
	students.GET("/:id", studentHandler.Get)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	// --- Dashboard and rules (admin or instructor) ---
	e.GET("/api/dashboard-stats", dashboardHandler.Stats, authGuard, anyStaff)
	rulesGroup := e.Group("/api/rules", authGuard, anyStaff)
	rulesGroup.GET("", rulesHandler.List)
	rulesGroup.GET("/:state", rulesHandler.Get)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
