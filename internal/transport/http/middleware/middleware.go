package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/view"
)

const principalKey = "principal"

// Authenticated resolves the bearer token into a principal and aborts with
// 401 or 403 when the token is missing, invalid, or the account is banned.
func Authenticated(ctrl controller.IController) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			view.RespondError(c, apperror.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}

		principal, err := ctrl.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			view.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

// AdminOnly requires an authenticated admin principal. Must run after
// Authenticated.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			view.RespondError(c, apperror.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}
		if !principal.IsAdmin() {
			view.RespondError(c, apperror.Forbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the principal stored by Authenticated.
func PrincipalFromContext(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}

// MustPrincipal is for handlers behind Authenticated. A missing principal
// means a route was wired without the middleware; respond 401 and report it.
func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		view.RespondError(c, apperror.Unauthorized("missing bearer token"))
		c.Abort()
	}
	return principal, ok
}
