package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cityconnect/issue-reporting/internal/api/handler"
	"github.com/cityconnect/issue-reporting/internal/api/middleware"
	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// Dependencies bundles everything the router needs wired in.
type Dependencies struct {
	AuthService  ports.AuthService
	UserService  ports.UserService
	IssueService ports.IssueService
	FileStorage  ports.FileStorage
	Tokens       ports.TokenService
	Users        ports.UserRepository
	Throttle     ports.LoginThrottle
	UploadsDir   string
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
	// Metrics receives the HTTP collectors. Defaults to the global
	// registerer; tests pass their own to build routers repeatedly.
	Metrics prometheus.Registerer
}

// accessPolicy is the ordered route policy. First match wins; anything
// unmatched requires an authenticated principal.
func accessPolicy() *middleware.Policy {
	return middleware.NewPolicy(
		middleware.Rule{Prefix: "/api/v1/auth/", Public: true},
		middleware.Rule{Prefix: "/hello-world", Public: true},
		middleware.Rule{Prefix: "/health", Public: true},
		middleware.Rule{Prefix: "/metrics", Public: true},
		middleware.Rule{Method: http.MethodGet, Prefix: "/media/", Public: true},
		middleware.Rule{Prefix: "/api/v1/admin/", Roles: []string{domain.RoleAdmin}},
		middleware.Rule{Prefix: "/api/v1/issues", Roles: []string{domain.RoleCitizen}},
		middleware.Rule{Prefix: "/api/v1/files/upload", Roles: []string{domain.RoleCitizen, domain.RoleAdmin}},
	)
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	registerer := deps.Metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "cityconnect",
		Registerer: registerer,
	}))
	e.Use(middleware.Authenticate(deps.Tokens, deps.Users))
	e.Use(middleware.Authorize(accessPolicy()))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Throttle)
	userHandler := handler.NewUserHandler(deps.UserService)
	issueHandler := handler.NewIssueHandler(deps.IssueService)
	fileHandler := handler.NewFileHandler(deps.FileStorage)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	// --- Auth routes ---
	e.POST("/api/v1/auth/register", authHandler.Register)
	e.POST("/api/v1/auth/login", authHandler.Login)

	// --- Citizen routes ---
	e.POST("/api/v1/issues", issueHandler.Create)
	e.GET("/api/v1/issues/mine", issueHandler.ListMine)

	// --- Admin routes ---
	e.GET("/api/v1/admin/issues", issueHandler.ListAll)
	e.PUT("/api/v1/admin/issues/:id/status", issueHandler.UpdateStatus)
	e.DELETE("/api/v1/admin/issues/:id", issueHandler.Delete)
	e.GET("/api/v1/admin/issues/:id/activity", issueHandler.Activity)

	// --- Profile routes (any authenticated user) ---
	e.GET("/api/v1/users/me", userHandler.Profile)
	e.PUT("/api/v1/users/me", userHandler.Update)
	e.DELETE("/api/v1/users/me", userHandler.Delete)

	// --- Files ---
	e.POST("/api/v1/files/upload", fileHandler.Upload)
	e.Static("/media", deps.UploadsDir)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/hello-world", healthHandler.Hello)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
