package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lbseries/internal/handler"
	"lbseries/internal/middleware"
	"lbseries/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health *handler.HealthHandler
	Hooks  *handler.HookHandler
	Query  *handler.QueryHandler
	Report *handler.ReportHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(tokens service.TokenService, h Handlers, log logrus.FieldLogger, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require a valid service token
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(tokens))

	hooks := v1.Group("/hooks")
	hooks.Use(middleware.RequireScope(service.ScopeHooks))
	hooks.POST("/autoname", h.Hooks.Autoname)
	hooks.POST("/validate", h.Hooks.Validate)
	hooks.POST("/saved", h.Hooks.Saved)

	query := v1.Group("")
	query.Use(middleware.RequireScope(service.ScopeQuery))
	query.GET("/query/warehouses", h.Query.Warehouses)
	query.GET("/query/addresses", h.Query.Addresses)
	query.GET("/locations/:name/warehouses", h.Query.LocationWarehouses)

	reports := v1.Group("/reports")
	reports.Use(middleware.RequireScope(service.ScopeReports))
	reports.GET("/location-coverage", h.Report.LocationCoverage)

	return r
}
