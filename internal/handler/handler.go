package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hooplytics/playtype-stats-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, summarySvc service.SummaryService, catalogSvc service.CatalogService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewSummaryHandler(summarySvc).Register(api)
		NewCatalogHandler(catalogSvc).Register(api)
	}
}
