package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	v1.GET("/", GetHome)
	registerSessionRoutes(v1, services.Session, services.Navigation)
	RegisterPartyRoutes(v1, services.Ledger)
	registerSummaryRoutes(v1, services.Summary)
	registerReminderRoutes(v1, services.Reminder)
	registerInvoiceRoutes(v1, services.Invoice)
	registerReportingRoutes(v1, services.Reporting)
}
