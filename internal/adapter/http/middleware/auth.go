package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
	"ecertidoes/pkg"
)

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// Protect validates the bearer token and seeds the context with its claims.
func Protect(tokens interfaces.ITokenManager, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http.auth")

	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" || !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Não autorizado, nenhum token fornecido.", http.StatusUnauthorized))
			return
		}
		token := strings.TrimSpace(raw[len("bearer "):])
		if token == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Não autorizado, nenhum token fornecido.", http.StatusUnauthorized))
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			log.Debug("token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			abort(c, pkg.NewDomainError("UNAUTHORIZED", "Não autorizado, token inválido.", err, http.StatusUnauthorized))
			return
		}

		WithClaims(c, claims)
		c.Next()
	}
}

// Authorize must run after Protect.
func Authorize(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Não autorizado, nenhum token fornecido.", http.StatusUnauthorized))
			return
		}
		if !slices.Contains(roles, claims.Role) {
			msg := fmt.Sprintf("Acesso negado. A permissão '%s' não é suficiente para acessar este recurso.", claims.Role)
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", msg, http.StatusForbidden))
			return
		}
		c.Next()
	}
}
