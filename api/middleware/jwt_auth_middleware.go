package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/internal/tokenutil"
)

// JwtAuthMiddleware 校验Bearer令牌并把用户id写入上下文
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			authToken := parts[1]
			authorized, _ := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				userID, err := tokenutil.ExtractIDFromToken(authToken, secret)
				if err != nil {
					controller.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
					c.Abort()
					return
				}
				c.Set("x-user-id", userID)
				c.Next()
				return
			}
		}
		controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "未授权访问")
		c.Abort()
	}
}
