package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/galeria/admin-api/docs"
	"github.com/galeria/admin-api/internal/api/handler"
	"github.com/galeria/admin-api/internal/api/middleware"
	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
	"github.com/galeria/admin-api/internal/infrastructure/http/handlers"
)

// Dependencies are the use cases and settings the router is built from.
type Dependencies struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Activities ports.ActivityService
	Galleries  ports.GalleryService
	Photos     ports.PhotoService

	JWTSecret string
	Log       zerolog.Logger

	// StaticDir, when set, is served under StaticPrefix (local photo storage).
	StaticDir    string
	StaticPrefix string

	// Readiness lists the dependencies checked by GET /health/ready.
	Readiness map[string]handlers.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.CORS())

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	activityHandler := handler.NewActivityHandler(deps.Activities)
	galleryHandler := handler.NewGalleryHandler(deps.Galleries)
	photoHandler := handler.NewPhotoHandler(deps.Photos)

	verifyToken := middleware.Auth(deps.JWTSecret)
	loadUser := middleware.LoadUser(deps.Auth)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	apiGroup.POST("/auths/login", authHandler.Login)
	apiGroup.GET("/auths/user", authHandler.CurrentUser, verifyToken, loadUser)
	apiGroup.POST("/auths/register", authHandler.Register, verifyToken, loadUser, adminOnly)

	// --- Entity routes: reads for any session, writes for admins ---
	protected := apiGroup.Group("", verifyToken, loadUser)

	protected.GET("/users", userHandler.List)
	protected.GET("/users/:id", userHandler.Get)
	protected.PUT("/users/:id", userHandler.Update, adminOnly)
	protected.DELETE("/users/:id", userHandler.Delete, adminOnly)

	protected.GET("/activities", activityHandler.List)
	protected.GET("/activities/:id", activityHandler.Get)
	protected.POST("/activities", activityHandler.Create, adminOnly)
	protected.PUT("/activities/:id", activityHandler.Update, adminOnly)
	protected.DELETE("/activities/:id", activityHandler.Delete, adminOnly)

	protected.GET("/galleries", galleryHandler.List)
	protected.GET("/galleries/:id", galleryHandler.Get)
	protected.POST("/galleries", galleryHandler.Create, adminOnly)
	protected.PUT("/galleries/:id", galleryHandler.Update, adminOnly)
	protected.DELETE("/galleries/:id", galleryHandler.Delete, adminOnly)

	protected.GET("/photos", photoHandler.List)
	protected.GET("/photos/:id", photoHandler.Get)
	protected.POST("/photos", photoHandler.Create, adminOnly)
	protected.PUT("/photos/:id", photoHandler.Update, adminOnly)
	protected.DELETE("/photos/:id", photoHandler.Delete, adminOnly)

	// --- Uploaded files ---
	if deps.StaticDir != "" {
		e.Static(deps.StaticPrefix, deps.StaticDir)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
