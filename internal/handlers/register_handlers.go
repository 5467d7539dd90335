package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	if err := registerAuthRoutes(api, cfg, services.User); err != nil {
		return err
	}

	setupProtectedRoutes(api, cfg, services)
	return nil
}

// setupProtectedRoutes registers the record and report routes behind the JWT middleware.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerBudgetRoutes(protected, services.Budget)
	registerExpenseRoutes(protected, services.Expense)
	registerReportRoutes(protected, services.Reporting)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	if cfg.FrontendBaseURL == "" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowCredentials = true
	return corsCfg
}
