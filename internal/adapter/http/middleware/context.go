package middleware

import (
	"github.com/gin-gonic/gin"

	"ecertidoes/internal/usecase/interfaces"
)

const ctxClaims = "auth.claims"

// WithClaims stores the authenticated identity on the gin context.
func WithClaims(c *gin.Context, claims interfaces.TokenClaims) {
	c.Set(ctxClaims, claims)
}

func ClaimsFromContext(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}

// UserIDFromContext returns 0 when the request is not authenticated.
func UserIDFromContext(c *gin.Context) uint64 {
	claims, _ := ClaimsFromContext(c)
	return claims.UserID
}
