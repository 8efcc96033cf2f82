// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"boatify/models"
	"boatify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware authenticates a request from its Bearer token. The token
// hash is checked against the auth cache when available; if the cache is down
// or has no entry, a valid signature alone is accepted. Sets "userID" and
// "role" in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil:
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				// Known-good token: slide the cache TTL.
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			case err == redis.Nil:
				// No cached hash; the JWT signature check above stands alone.
				_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
			default:
				utils.GetLogger().Warn("auth cache lookup failed, accepting token on signature only",
					zap.Error(err))
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// ActorFromContext rebuilds the authenticated identity set by
// JWTAuthMiddleware.
func ActorFromContext(c *gin.Context) models.Actor {
	actor := models.Actor{Role: models.RoleUser}
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok && role != "" {
			actor.Role = role
		}
	}
	return actor
}
