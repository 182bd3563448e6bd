package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lbseries/internal/service"
)

const (
	ContextKeySubject = "subject"
	ContextKeyClaims  = "claims"
)

// AuthMiddleware returns Gin middleware that validates service tokens and
// injects the caller identity.
func AuthMiddleware(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireScope returns middleware that checks the token grants scope.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ContextKeyClaims)
		claims, ok := v.(*service.Claims)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "claims not found in context"},
			})
			return
		}
		if !claims.HasScope(scope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "token lacks scope " + scope},
			})
			return
		}
		c.Next()
	}
}
