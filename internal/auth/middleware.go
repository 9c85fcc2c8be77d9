package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextViewerID is the gin context key holding the authenticated viewer id
const ContextViewerID = "viewer_id"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the viewer context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextViewerID, claims.ViewerID)
		c.Set("username", claims.Username)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// ViewerID extracts the authenticated viewer id from the request context
func ViewerID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextViewerID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
