package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecertidoes/internal/adapter/http/dto/request"
	"ecertidoes/internal/adapter/http/dto/response"
	"ecertidoes/internal/usecase"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary   Cadastra um cliente
// @Tags      auth
// @Accept    json
// @Produce   json
// @Param     body  body      request.RegisterRequest  true  "Dados do usuário"
// @Success   201   {object}  response.RegisterResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeUseCaseError(c, usecase.ErrInvalidRegistration)
		return
	}
	u, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.RegisterResponse{
		Message: "Usuário registrado com sucesso!",
		User:    response.FromUser(u),
	})
}

// Login godoc
// @Summary   Autentica e devolve o token de acesso
// @Tags      auth
// @Accept    json
// @Produce   json
// @Param     body  body      request.LoginRequest  true  "Credenciais"
// @Success   200   {object}  response.LoginResponse
// @Failure   401   {object}  pkg.HTTPError
// @Router    /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errMissingCredentials)
		return
	}
	u, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{
		Message: "Login bem-sucedido!",
		User:    response.FromUser(u),
		Token:   token,
	})
}
