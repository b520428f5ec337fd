package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CriarInsumoRequest registers an ingredient from its purchase data. The
// normalizer derives custo base, unidade base and fator de conversão.
type CriarInsumoRequest struct {
	Nome             string          `json:"nome"              validate:"required,min=2,max=120"`
	PrecoEmbalagem   decimal.Decimal `json:"preco_embalagem"   validate:"min=0"`
	TamanhoEmbalagem decimal.Decimal `json:"tamanho_embalagem" validate:"gt=0"`
	UnidadeEmbalagem string          `json:"unidade_embalagem" validate:"required,oneof=kg g l ml un"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InsumoResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	CustoBase      decimal.Decimal `json:"custo_base"`
	UnidadeBase    string          `json:"unidade_base"`
	FatorConversao int64           `json:"fator_conversao"`
}
