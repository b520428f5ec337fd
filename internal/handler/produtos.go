package handler

import (
	"net/http"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutoHandler struct {
	produtos service.ProdutoService
}

func NewProdutoHandler(produtos service.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{produtos: produtos}
}

// Criar godoc
//
//	@Summary	Cria um produto com custos padrão
//	@Tags		produtos
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CriarProdutoRequest	true	"Nome do produto"
//	@Success	201		{object}	dto.ProdutoResponse
//	@Router		/v1/produtos [post]
func (h *ProdutoHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.produtos.Criar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProdutoHandler) Listar(c *gin.Context) {
	lista, err := h.produtos.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lista)
}

func (h *ProdutoHandler) ObterPorID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.produtos.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutoHandler) Atualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.produtos.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
//
//	@Summary	Remove um produto e devolve a lista restante
//	@Tags		produtos
//	@Produce	json
//	@Param		id	path	string	true	"ID do produto"
//	@Success	200	{array}	dto.ProdutoResponse
//	@Router		/v1/produtos/{id} [delete]
func (h *ProdutoHandler) Excluir(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	restantes, err := h.produtos.Excluir(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restantes)
}

// AtualizarFicha replaces the product's whole ficha técnica.
func (h *ProdutoHandler) AtualizarFicha(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarFichaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.produtos.AtualizarFicha(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutoHandler) AtualizarCustos(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarCustosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.produtos.AtualizarCustos(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPreco godoc
//
//	@Summary	Preço de venda sugerido (cacheado)
//	@Tags		produtos
//	@Produce	json
//	@Param		id	path		string	true	"ID do produto"
//	@Success	200	{object}	dto.PrecoResponse
//	@Router		/v1/produtos/{id}/preco [get]
func (h *ProdutoHandler) ObterPreco(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.produtos.ObterPreco(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FichaPDF renders and streams the pricing sheet.
func (h *ProdutoHandler) FichaPDF(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	path, err := h.produtos.GerarFichaPDF(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, "ficha_"+id.String()+".pdf")
}

// EnviarFicha queues the PDF-by-email delivery and returns 202.
func (h *ProdutoHandler) EnviarFicha(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarFichaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.produtos.EnviarFicha(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "enfileirado"})
}
