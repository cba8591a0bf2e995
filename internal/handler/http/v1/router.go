package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1. Все маршруты, кроме
// health-check, закрыты API-ключом; ключ определяет роль вызывающего.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	authorityOnly := RequireRole(models.RoleAuthority, h.logger)

	// Маршруты для управления геозонами: мутации доступны только ответственным
	zones := protected.Group("/zones")
	{
		zones.POST("", authorityOnly, h.createZone)
		zones.GET("", h.listZones)
		zones.GET("/nearby", h.nearbyZones)
		zones.GET("/:id", h.getZone)
		zones.PUT("/:id", authorityOnly, h.updateZone)
		zones.DELETE("/:id", authorityOnly, h.deleteZone)
	}

	// Маршрут для обновления местоположения туриста
	protected.POST("/location/update", h.updateLocation)

	// Маршруты жизненного цикла тревог
	alerts := protected.Group("/alerts")
	{
		alerts.POST("/sos", h.createSOS)
		alerts.GET("/:id", h.getAlert)
		alerts.PATCH("/:id/status", h.transitionAlert)
	}

	// Маршруты регистрации инцидентов
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.fileIncident)
		incidents.GET("/:id", h.getIncident)
	}

	// Профили участников и оценка безопасности туриста
	protected.GET("/tourists/:id", h.getTourist)
	protected.GET("/tourists/:id/safety-score", h.getSafetyScore)
	protected.GET("/authorities/:id", h.getAuthority)

	// Статистика
	protected.GET("/stats", h.getStats)
}
