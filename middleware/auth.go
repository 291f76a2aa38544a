package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"innkeep/models"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// PrincipalKey is where the resolved principal lives on the gin context.
const PrincipalKey = "principal"

// RequirePrincipal resolves the caller once at the boundary into an explicit
// principal kind from the token's role claim, and rejects callers whose kind
// does not match. Revoked tokens are tracked in the auth cache by hash.
func RequirePrincipal(kind models.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != string(kind) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Caller is not allowed to perform this action"})
			return
		}

		if tokenRevoked(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set(PrincipalKey, models.Principal{
			Kind:    models.PrincipalKind(role),
			Subject: subject,
		})
		c.Next()
	}
}

// tokenRevoked checks the auth cache denylist. Cache trouble fails open: a
// missing denylist must not lock out every caller.
func tokenRevoked(tokenString string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := utils.AuthCachePrefix + "revoked:" + utils.HashToken(tokenString)
	if _, err := utils.GetAuthCacheClient().Get(ctx, key).Result(); err == nil {
		return true
	} else if err != redis.Nil {
		utils.GetLogger().Warn("auth cache lookup failed; skipping revocation check")
	}
	return false
}

// GetPrincipal returns the principal resolved by RequirePrincipal.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := val.(models.Principal)
	return principal, ok
}
