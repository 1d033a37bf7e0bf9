package middleware

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/model"
	"buildbridge/pkg/response"
)

// scopeKey is the gin context key the caller scope is stored under.
const scopeKey = "buildbridge.scope"

// Auth extracts the caller identity from the X-User-ID header and stores
// it as a model.Scope on the request context. Token verification happens
// upstream at the API gateway; this service only needs the identity.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the caller scope stored by Auth. The zero Scope is
// returned for unauthenticated routes.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
