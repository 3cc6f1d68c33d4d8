package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobboard/jobboard-api/docs"
	"github.com/jobboard/jobboard-api/internal/api/handler"
	"github.com/jobboard/jobboard-api/internal/api/middleware"
	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/service"
	"github.com/jobboard/jobboard-api/internal/infrastructure/config"
	mongodb "github.com/jobboard/jobboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobboard/jobboard-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)

	var jobCache service.JobListCache
	if rdb != nil {
		jobCache = redisdb.NewJobListCache(rdb)
	}

	accountService := service.NewAccountService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	jobService := service.NewJobService(jobRepo, userRepo, jobCache, log)
	applicationService := service.NewApplicationService(appRepo, jobRepo, userRepo, log)

	accountHandler := handler.NewAccountHandler(accountService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	auth := middleware.Auth(cfg.JWTSecret)
	employerOnly := middleware.RBAC(domain.RoleEmployer)
	candidateOnly := middleware.RBAC(domain.RoleCandidate)

	// --- Auth routes ---
	e.POST("/auth/register", accountHandler.Register)
	e.POST("/auth/register/bulk", accountHandler.BulkRegister)
	e.POST("/auth/login", accountHandler.Login)

	// --- Users ---
	users := e.Group("/v1/users", auth)
	users.GET("", accountHandler.List)
	users.GET("/:id", accountHandler.Get)
	users.PUT("/:id", accountHandler.Update)
	users.DELETE("/:id", accountHandler.Delete)

	// --- Jobs ---
	e.GET("/v1/jobs", jobHandler.List)
	e.GET("/v1/jobs/:id", jobHandler.Get)
	e.GET("/v1/employers/:id/jobs", jobHandler.ListByEmployer)
	e.POST("/v1/jobs", jobHandler.Create, auth, employerOnly)
	e.PUT("/v1/jobs/:id", jobHandler.Update, auth, employerOnly)
	e.DELETE("/v1/jobs/:id", jobHandler.Delete, auth, employerOnly)

	// --- Applications ---
	e.GET("/v1/applications", applicationHandler.List)
	e.GET("/v1/applications/:id", applicationHandler.Get)
	e.GET("/v1/jobs/:id/applications", applicationHandler.ListByJob, auth, employerOnly)
	e.GET("/v1/me/applications", applicationHandler.ListMine, auth, candidateOnly)
	e.POST("/v1/applications", applicationHandler.Create, auth, candidateOnly)
	e.PUT("/v1/applications/:id", applicationHandler.Update, auth, candidateOnly)
	e.DELETE("/v1/applications/:id", applicationHandler.Delete, auth, candidateOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
