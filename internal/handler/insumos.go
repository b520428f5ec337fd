package handler

import (
	"net/http"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/service"

	"github.com/gin-gonic/gin"
)

type InsumoHandler struct {
	insumos service.InsumoService
}

func NewInsumoHandler(insumos service.InsumoService) *InsumoHandler {
	return &InsumoHandler{insumos: insumos}
}

// Listar godoc
//
//	@Summary	Lista os insumos cadastrados
//	@Tags		insumos
//	@Produce	json
//	@Success	200	{array}	dto.InsumoResponse
//	@Router		/v1/insumos [get]
func (h *InsumoHandler) Listar(c *gin.Context) {
	lista, err := h.insumos.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lista)
}

// Criar godoc
//
//	@Summary	Cadastra um insumo a partir dos dados de compra
//	@Tags		insumos
//	@Accept		json
//	@Produce	json
//	@Param		body	body	dto.CriarInsumoRequest	true	"Dados da embalagem comprada"
//	@Success	201		{array}	dto.InsumoResponse
//	@Failure	422		{object}	apierror.ValidationError
//	@Router		/v1/insumos [post]
func (h *InsumoHandler) Criar(c *gin.Context) {
	var req dto.CriarInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lista, err := h.insumos.Criar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lista)
}
