package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserRolesKey = "user_roles"
)

var roleHierarchy = map[user.Role]int{
	user.RoleUser:  1,
	user.RoleAdmin: 2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		userID, roles, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetUser(c, userID, roles)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := GetUserRoles(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(roles, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func hasMinimumRole(roles user.Roles, minRole user.Role) bool {
	minLevel, minExists := roleHierarchy[minRole]
	if !minExists {
		return false
	}
	for _, r := range roles {
		if level, ok := roleHierarchy[r]; ok && level >= minLevel {
			return true
		}
	}
	return false
}

// SetUser stores the authenticated principal on the request context.
func SetUser(c *gin.Context, userID uuid.UUID, roles user.Roles) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRolesKey, roles)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRoles(c *gin.Context) (user.Roles, bool) {
	v, exists := c.Get(ctxUserRolesKey)
	if !exists {
		return nil, false
	}

	roles, ok := v.(user.Roles)
	return roles, ok
}
