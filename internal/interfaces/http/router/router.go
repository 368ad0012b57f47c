// Package router assembles the gin engine: middleware chain, probe
// endpoints, public auth routes, and the authenticated API groups.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/infrastructure/auth"
	"github.com/bizos/backend/internal/infrastructure/config"
	"github.com/bizos/backend/internal/infrastructure/logger"
	"github.com/bizos/backend/internal/infrastructure/persistence"
	"github.com/bizos/backend/internal/interfaces/http/handler"
	"github.com/bizos/backend/internal/interfaces/http/middleware"
)

// Deps carries everything the router needs to wire the API
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *persistence.Database
	APIKeys *auth.APIKeyAuthenticator
	JWT     *auth.JWTService

	Auth       *handler.AuthHandler
	Business   *handler.BusinessHandler
	Finance    *handler.FinanceHandler
	HR         *handler.HRHandler
	CRM        *handler.CRMHandler
	Operations *handler.OperationsHandler
	Inventory  *handler.InventoryHandler
	BI         *handler.BIHandler
	Documents  *handler.DocumentsHandler
	Voice      *handler.VoiceHandler
}

// generationRoutes are the endpoints that invoke the generation provider
// and therefore get per-owner rate limiting.
var generationRoutes = []string{
	"/api/v1/modules/accounting/financial-report",
	"/api/v1/modules/accounting/financial-report/pdf",
	"/api/v1/modules/accounting/payroll-summary",
	"/api/v1/modules/hr/candidates/:id/rank",
	"/api/v1/modules/hr/interview-summary",
	"/api/v1/modules/hr/follow-up-email",
	"/api/v1/modules/crm/lead-follow-up",
	"/api/v1/modules/operations/logistics-plan",
	"/api/v1/modules/inventory/restock-suggestion",
	"/api/v1/modules/bi/forecast",
	"/api/v1/modules/bi/kpi-summary",
	"/api/v1/modules/bi/chart",
	"/api/v1/modules/bi/competitor-analysis",
	"/api/v1/modules/bi/dashboard",
	"/api/v1/modules/documents/parse-contract",
	"/api/v1/modules/documents/summarize",
	"/api/v1/modules/documents/draft",
	"/api/v1/modules/documents/categorize",
	"/api/v1/modules/voice/tts",
}

// New builds the gin engine with the full middleware chain and all routes
func New(d Deps) *gin.Engine {
	if d.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	if len(d.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(d.Config.HTTP.TrustedProxies)
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(d.Config.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = d.Config.HTTP.CORSAllowOrigins
	}
	if len(d.Config.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = d.Config.HTTP.CORSAllowMethods
	}
	if len(d.Config.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = d.Config.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.Secure())
	engine.Use(logger.GinMiddleware(d.Logger))
	if d.Config.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(d.Config.HTTP.MaxBodySize))
	}
	if d.Config.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: d.Config.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}

	// Probes live outside API versioning.
	system := handler.NewSystemHandler(d.DB)
	system.RegisterRoutes(engine)

	v1 := engine.Group("/api/v1")

	// Registration and login are the only routes that skip authentication.
	d.Auth.RegisterPublicRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Auth(middleware.AuthConfig{
		APIKeys: d.APIKeys,
		JWT:     d.JWT,
		Logger:  d.Logger,
	}))

	d.Auth.RegisterRoutes(authed)
	d.Business.RegisterRoutes(authed)

	modules := authed.Group("/modules")
	if d.Config.AI.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(d.Config.AI.RequestsPerMinute, d.Config.AI.RequestsPerMinute)
		modules.Use(limiter.MiddlewareForPaths(generationRoutes...))
	}

	d.Finance.RegisterRoutes(modules)
	d.HR.RegisterRoutes(modules)
	d.CRM.RegisterRoutes(modules)
	d.Operations.RegisterRoutes(modules)
	d.Inventory.RegisterRoutes(modules)
	d.BI.RegisterRoutes(modules)
	d.Documents.RegisterRoutes(modules)
	d.Voice.RegisterRoutes(modules)

	return engine
}
