package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Alisacalm/Yatube/internal/pkg/jwtutil"
	"github.com/Alisacalm/Yatube/internal/transport/http/response"
)

const (
	ContextAdminIDKey       = "admin_user_id"
	ContextAdminUsernameKey = "admin_username"
)

// AdminJWT guards the administrative JSON API with bearer tokens issued to
// staff users.
func AdminJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, 401, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, 401, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if !claims.IsStaff {
			response.Error(c, 403, response.CodeForbidden, "staff access required")
			c.Abort()
			return
		}

		c.Set(ContextAdminIDKey, claims.UserID)
		c.Set(ContextAdminUsernameKey, claims.Username)
		c.Next()
	}
}
