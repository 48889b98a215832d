package middleware

import (
	"net/http"
	"strings"

	"Station_Hub/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextPrincipalKey = "principal"

// PrincipalMiddleware 解析身份服务签发的 token，把可信 principal 注入上下文。
// 本子系统不做认证，只校验签名和有效期。
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		principal, err := pkg.ParsePrincipal(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}
