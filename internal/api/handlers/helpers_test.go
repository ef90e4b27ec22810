package handlers_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legal-workspace-backend/internal/database/models"
)

// authenticateAs stands in for the auth middleware and sets the caller's identity
func authenticateAs(userID uuid.UUID, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}
