package middlewares

import (
	"net/http"
	"strings"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// ResolveUserID extracts a bearer credential from a raw Authorization header
// value and resolves it to a user ID. The scheme is matched case-insensitively
// and any amount of whitespace may separate scheme and token. An absent
// header, a malformed one, and a token that fails verification all collapse
// to ok=false; callers never learn which.
func ResolveUserID(authHeader string) (uint, bool) {
	parts := strings.Fields(strings.TrimSpace(authHeader))
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, false
	}
	userID, err := utils.VerifyToken(parts[1])
	if err != nil {
		return 0, false
	}
	return userID, true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := ResolveUserID(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present
// but never rejects the request. The AI assistant works for anonymous
// visitors; it just loses the workout context.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := ResolveUserID(c.GetHeader("Authorization")); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}
