package auth

import (
	"net/http"
	"strings"

	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator verifies identity tokens
type TokenValidator interface {
	Validate(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		userID, _ := claims.UserID()

		// Set user context
		c.Set("user_id", userID)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), userID.String()))

		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not one of roles.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admins only."})
		c.Abort()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the user role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}

	r, ok := role.(models.Role)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
