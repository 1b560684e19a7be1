package middleware

import (
	"net/http"
	"strings"

	jwtsvc "mentorloop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminAuth validates the dashboard bearer token. Websocket upgrades
// cannot set headers, so a "token" query parameter is accepted as a
// fallback for the feed endpoint.
func AdminAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(c.Query("token"))
		}
		if tokenStr == "" {
			abortUnauthorized(c, "Missing credentials")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil || claims.Role != "admin" {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
