package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// roleContextKey - ключ, под которым роль вызывающего лежит в контексте gin
const roleContextKey = "caller_role"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Ключ определяет роль вызывающего: турист или ответственный.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		role, ok := resolveRole(cfg, apiKey)
		if !ok {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(roleContextKey, role)
		c.Next()
	}
}

// resolveRole сопоставляет API-ключ с ролью по спискам из конфигурации
func resolveRole(cfg *config.Config, apiKey string) (models.Role, bool) {
	for _, key := range cfg.AuthorityAPIKeys {
		if key == apiKey {
			return models.RoleAuthority, true
		}
	}
	for _, key := range cfg.TouristAPIKeys {
		if key == apiKey {
			return models.RoleTourist, true
		}
	}
	return "", false
}

// callerRole возвращает роль вызывающего из контекста запроса
func callerRole(c *gin.Context) models.Role {
	value, exists := c.Get(roleContextKey)
	if !exists {
		return ""
	}
	role, _ := value.(models.Role)
	return role
}

// RequireRole пропускает запрос только с указанной ролью
func RequireRole(role models.Role, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerRole(c) != role {
			log.Warnf("Operation requires role %q", role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
