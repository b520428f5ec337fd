package handler

import (
	"net/http"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/service"

	"github.com/gin-gonic/gin"
)

type SimulacaoHandler struct {
	simulacoes service.SimulacaoService
}

func NewSimulacaoHandler(simulacoes service.SimulacaoService) *SimulacaoHandler {
	return &SimulacaoHandler{simulacoes: simulacoes}
}

// Simular godoc
//
//	@Summary	Simula o impacto de uma ficha técnica alternativa
//	@Tags		simulacoes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID do produto"
//	@Param		body	body		dto.SimulacaoRequest	true	"Ficha candidata"
//	@Success	200		{object}	dto.SimulacaoResponse
//	@Router		/v1/produtos/{id}/simulacao [post]
func (h *SimulacaoHandler) Simular(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.SimulacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.simulacoes.Simular(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterAnalise polls the async consultant narrative by analise id.
// 202 while the job is still running, 200 with the text once done.
func (h *SimulacaoHandler) ObterAnalise(c *gin.Context) {
	resp, err := h.simulacoes.ObterAnalise(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if resp.Status == "pendente" {
		c.JSON(http.StatusAccepted, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
