package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware открывает API для дашборда; пустой список разрешает любой origin
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Вебхук входящей почты, basic auth только если задан пользователь
	inbound := api.Group("")
	if h.cfg.InboundUser != "" {
		inbound.Use(gin.BasicAuth(gin.Accounts{h.cfg.InboundUser: h.cfg.InboundPassword}))
	}
	inbound.POST("/inbound-email", h.inboundEmail)

	// Маршруты дашборда
	dashboard := api.Group("")
	dashboard.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	reports := dashboard.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/timeline", h.getTimeline)
		reports.GET("/:id/emails", h.listEmails)
		reports.GET("/:id/audit", h.listAudit)
		reports.POST("/:id/assign", h.assignResponder)
		reports.POST("/:id/resolve", h.resolveReport)
	}
	dashboard.GET("/stats", h.getStats)

	responders := dashboard.Group("/responders")
	{
		responders.GET("", h.listResponders)
		responders.POST("", h.createResponder)
		responders.PUT("/:id", h.updateResponder)
		responders.DELETE("/:id", h.deactivateResponder)
	}

	triage := dashboard.Group("/triage")
	{
		triage.POST("/parse", h.parseText)
		triage.POST("/facilities", h.nearbyFacilities)
		triage.POST("/reply-preview", h.replyPreview)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
