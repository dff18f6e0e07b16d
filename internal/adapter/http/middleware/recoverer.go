package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecertidoes/pkg"
)

func Recoverer(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http")

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor.", fmt.Errorf("panic: %v", rec), http.StatusInternalServerError)
				abort(c, appErr)
			}
		}()
		c.Next()
	}
}
