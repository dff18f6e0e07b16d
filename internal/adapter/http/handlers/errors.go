package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecertidoes/internal/usecase"
	"ecertidoes/pkg"
)

type errorMapping struct {
	code   string
	status int
}

var kindMappings = map[usecase.ErrorKind]errorMapping{
	usecase.KindValidation:   {"INVALID_REQUEST", http.StatusBadRequest},
	usecase.KindNotFound:     {"NOT_FOUND", http.StatusNotFound},
	usecase.KindConflict:     {"CONFLICT", http.StatusConflict},
	usecase.KindGateway:      {"GATEWAY_ERROR", http.StatusInternalServerError},
	usecase.KindUnauthorized: {"UNAUTHORIZED", http.StatusUnauthorized},
	usecase.KindForbidden:    {"FORBIDDEN", http.StatusForbidden},
	usecase.KindInternal:     {"INTERNAL_ERROR", http.StatusInternalServerError},
}

const internalErrorMessage = "Erro interno do servidor."

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados do pedido inválidos.", http.StatusBadRequest)
	errInvalidIDParam      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "ID inválido.", http.StatusBadRequest)
	errMissingCredentials  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email e senha são obrigatórios.", http.StatusBadRequest)
)

// mapUseCaseError converts a use case failure into the HTTP envelope.
func mapUseCaseError(err error) *pkg.AppError {
	kind := usecase.KindOf(err)
	m, ok := kindMappings[kind]
	if !ok {
		m = kindMappings[usecase.KindInternal]
	}
	msg := usecase.MessageOf(err)
	if msg == "" {
		msg = internalErrorMessage
	}
	return pkg.NewDomainError(m.code, msg, err, m.status)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeUseCaseError(c *gin.Context, err error) {
	writeError(c, mapUseCaseError(err))
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		writeError(c, errInvalidIDParam)
		return 0, false
	}
	return id, true
}
