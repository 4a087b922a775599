package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"learnlive/pkg/utils"
)

// PrincipalResolver turns a bearer token into the caller's identity.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*utils.Principal, error)
}

func JWTAuthMiddleware(resolver PrincipalResolver) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		principal, err := resolver.ResolvePrincipal(c.Request.Context(), tokenString)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		utils.SetPrincipal(c, principal)
		c.Next()
	}
}
