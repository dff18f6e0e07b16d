package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecertidoes/internal/adapter/http/dto/request"
	"ecertidoes/internal/usecase"
)

// LookupHandler serves the public reference data used by the order form.
type LookupHandler struct {
	usecase usecase.ILookupUseCase
}

func NewLookupHandler(uc usecase.ILookupUseCase) *LookupHandler {
	return &LookupHandler{usecase: uc}
}

// ListEstados godoc
// @Summary  Lista as UFs
// @Tags     cartorios
// @Produce  json
// @Success  200  {array}  string
// @Router   /cartorios/estados [get]
func (h *LookupHandler) ListEstados(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListEstados())
}

// ListCidades godoc
// @Summary  Lista os municípios de uma UF
// @Tags     cartorios
// @Produce  json
// @Param    estado  path     string  true  "UF"
// @Success  200     {array}  string
// @Failure  400     {object} pkg.HTTPError
// @Router   /cartorios/estados/{estado}/cidades [get]
func (h *LookupHandler) ListCidades(c *gin.Context) {
	cidades, err := h.usecase.ListCidades(c.Request.Context(), c.Param("estado"))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, cidades)
}

// ListCartorios godoc
// @Summary  Lista os cartórios de um município
// @Tags     cartorios
// @Produce  json
// @Param    estado        query    string  true   "UF"
// @Param    cidade        query    string  true   "Município"
// @Param    atribuicaoId  query    string  false  "Atribuição (1 notas, 2 protesto, 3 civil, 4 imóveis)"
// @Success  200  {array}   entities.CartorioOption
// @Failure  400  {object}  pkg.HTTPError
// @Router   /cartorios [get]
func (h *LookupHandler) ListCartorios(c *gin.Context) {
	var q request.ListCartoriosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeUseCaseError(c, usecase.ErrMissingLookupInput)
		return
	}
	list, err := h.usecase.ListCartorios(c.Request.Context(), q.Estado, q.Cidade, q.AtribuicaoID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// QuoteShipping godoc
// @Summary  Calcula o frete de envio da certidão física
// @Tags     frete
// @Accept   json
// @Produce  json
// @Param    body  body      request.ShippingQuoteRequest  true  "Destino"
// @Success  200   {array}   entities.ShippingQuote
// @Failure  400   {object}  pkg.HTTPError
// @Router   /frete/calcular [post]
func (h *LookupHandler) QuoteShipping(c *gin.Context) {
	var payload request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeUseCaseError(c, usecase.ErrMissingShipping)
		return
	}
	quotes, err := h.usecase.QuoteShipping(c.Request.Context(), payload.CEPDestino, payload.ValorTotal)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}
