package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=120"`
}

type AtualizarProdutoRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2,max=120"`
}

type ItemFichaRequest struct {
	InsumoID        string          `json:"insumo_id"        validate:"required,uuid"`
	QuantidadeUsada decimal.Decimal `json:"quantidade_usada" validate:"min=0"`
	UnidadeUso      string          `json:"unidade_uso"`
}

// AtualizarFichaRequest replaces the whole ficha técnica; order in Itens is
// the display order.
type AtualizarFichaRequest struct {
	Itens []ItemFichaRequest `json:"itens" validate:"dive"`
}

type AtualizarCustosRequest struct {
	CustoFixoRateado        decimal.Decimal `json:"custo_fixo_rateado"        validate:"min=0"`
	PercentualImposto       decimal.Decimal `json:"percentual_imposto"`
	PercentualLucroDesejado decimal.Decimal `json:"percentual_lucro_desejado"`
}

type EnviarFichaRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustosResponse struct {
	CustoFixoRateado        decimal.Decimal `json:"custo_fixo_rateado"`
	PercentualImposto       decimal.Decimal `json:"percentual_imposto"`
	PercentualLucroDesejado decimal.Decimal `json:"percentual_lucro_desejado"`
}

type ItemFichaResponse struct {
	InsumoID        string          `json:"insumo_id"`
	Insumo          string          `json:"insumo"`
	QuantidadeUsada decimal.Decimal `json:"quantidade_usada"`
	UnidadeUso      string          `json:"unidade_uso"`
	Custo           decimal.Decimal `json:"custo"`
}

type ProdutoResponse struct {
	ID     string              `json:"id"`
	Nome   string              `json:"nome"`
	Custos CustosResponse      `json:"custos"`
	Ficha  []ItemFichaResponse `json:"ficha_tecnica"`

	CustoDireto      decimal.Decimal `json:"custo_direto"`
	PrecoSugerido    decimal.Decimal `json:"preco_sugerido"`
	MargemDegenerada bool            `json:"margem_degenerada"`
}

// PrecoResponse is the lightweight, cacheable price view of a product.
type PrecoResponse struct {
	ProdutoID        string          `json:"produto_id"`
	Nome             string          `json:"nome"`
	CustoDireto      decimal.Decimal `json:"custo_direto"`
	PrecoSugerido    decimal.Decimal `json:"preco_sugerido"`
	MargemDegenerada bool            `json:"margem_degenerada"`
}
