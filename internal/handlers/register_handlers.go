package handlers

import (
	"github.com/crestprop/lease_ledger_app/cmd/docs"
	"github.com/crestprop/lease_ledger_app/internal/core/services"
	"github.com/crestprop/lease_ledger_app/internal/middleware"
	"github.com/crestprop/lease_ledger_app/internal/platform/config"
	"github.com/crestprop/lease_ledger_app/internal/worker"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	svcs *services.Container,
	jobClient *worker.Client,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, svcs.User, svcs.Token)
	registerGoogleOAuthRoutes(r, cfg, svcs.GoogleOAuth, svcs.User, svcs.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, svcs, jobClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	svcs *services.Container,
	jobClient *worker.Client,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerVoucherRoutes(v1, svcs.Voucher)
	registerLegacyRoutes(v1, svcs.Voucher)
	registerAccountRoutes(v1, svcs.Account)
	registerContractRoutes(v1, svcs.Contract, svcs.LeaseInvoice, jobClient)
	registerMasterDataRoutes(v1, svcs.MasterData)
	registerUserRoutes(v1, svcs.User)
	registerReportingRoutes(v1, svcs.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
