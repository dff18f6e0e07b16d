package handlers

import (
	"github.com/gin-gonic/gin"

	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// withUser fakes the Protect middleware.
func withUser(userID uint64, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.WithClaims(c, interfaces.TokenClaims{UserID: userID, Role: role})
		c.Next()
	}
}
