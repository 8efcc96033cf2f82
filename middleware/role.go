// File: middleware/role.go
package middleware

import (
	"net/http"

	"boatify/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose authenticated role is not admin. It
// must run after JWTAuthMiddleware has populated the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
