package dto

import "github.com/jtruch-maker/precificagourmet/internal/pricing"

// SimulacaoRequest carries the candidate ficha técnica. Operating costs are
// deliberately absent: simulation varies quantities only, the stored custos
// always apply. ChaveAPI optionally overrides the server's Gemini key.
type SimulacaoRequest struct {
	Itens        []ItemFichaRequest `json:"itens"         validate:"required,dive"`
	GerarAnalise bool               `json:"gerar_analise"`
	ChaveAPI     string             `json:"chave_api"`
}

type SimulacaoResponse struct {
	Impacto   pricing.AnaliseImpacto `json:"impacto"`
	AnaliseID string                 `json:"analise_id,omitempty"`
}

// AnaliseResponse is the polled state of an async narrative job.
type AnaliseResponse struct {
	Status string `json:"status"` // pendente | concluida
	Texto  string `json:"texto,omitempty"`
}
