package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all v1 API routes on the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Public auth endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.GET("/me", JWTAuthMiddleware(h.authService, h.logger), h.currentUser)
	}

	// Citizen report endpoints, all behind authentication
	reports := api.Group("/reports", JWTAuthMiddleware(h.authService, h.logger))
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.POST("/:id/upvote", h.upvoteReport)
		reports.POST("/:id/comments", h.addComment)
		reports.GET("/:id/comments", h.listComments)

		// Authority-only triage endpoints
		triage := reports.Group("", RequireTriageRole(h.logger))
		{
			triage.PATCH("/:id/triage", h.triageReport)
			triage.POST("/:id/resolution-image", h.uploadResolutionImage)
			triage.GET("/:id/audit", h.getAuditLog)
		}
	}

	// Public analytics endpoints for the map views
	analytics := api.Group("/analytics")
	{
		analytics.GET("/wards", h.listWards)
		analytics.GET("/wards/:id", h.getWardAnalytics)
		analytics.GET("/hotspots", h.getHotspots)
		analytics.GET("/reports-geojson", h.getReportsGeoJSON)
	}

	// Health-check
	api.GET("/system/health", h.healthCheck)
}
