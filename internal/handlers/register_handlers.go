package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/middleware"
	"github.com/razalrahmanp/palaka-sub003/internal/platform/config"
)

var validatorsOnce sync.Once

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Extra middleware, such as rate limiting, is applied to the /api/v1 group after authentication.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	v1Middleware ...gin.HandlerFunc,
) {
	validatorsOnce.Do(registerValidators)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, v1Middleware)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	extra []gin.HandlerFunc,
) {
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret)}, extra...)
	v1 := r.Group("/api/v1", chain...)

	RegisterLedgerRoutes(v1, services.Ledger)
	RegisterEMIRoutes(v1, services.EMI)
}
