package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/infra"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"
	"github.com/jtruch-maker/precificagourmet/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AnaliseResultTTL bounds how long a generated parecer stays pollable.
const AnaliseResultTTL = time.Hour

// AnaliseKey is the Redis key holding the result of one narrative job.
func AnaliseKey(analiseID string) string { return "analise:" + analiseID }

// AnalisePayload carries everything the narrative worker needs: the figures
// are computed synchronously by the simulation before enqueueing, so the
// engine never waits on Gemini.
type AnalisePayload struct {
	AnaliseID string                 `json:"analise_id"`
	ProdutoID string                 `json:"produto_id"`
	ChaveAPI  string                 `json:"chave_api,omitempty"`
	Impacto   pricing.AnaliseImpacto `json:"impacto"`
	NovaFicha []dto.ItemFichaRequest `json:"nova_ficha"`
}

// AnaliseWorker turns a completed impact analysis into a consultant-style
// commentary via Gemini and parks the text in Redis for polling.
type AnaliseWorker struct {
	produtoRepo repository.ProdutoRepository
	insumoRepo  repository.InsumoRepository
	gemini      *infra.GeminiClient
	rdb         *redis.Client
}

func NewAnaliseWorker(
	produtoRepo repository.ProdutoRepository,
	insumoRepo repository.InsumoRepository,
	gemini *infra.GeminiClient,
	rdb *redis.Client,
) *AnaliseWorker {
	return &AnaliseWorker{produtoRepo: produtoRepo, insumoRepo: insumoRepo, gemini: gemini, rdb: rdb}
}

func (w *AnaliseWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var p AnalisePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("analise: payload inválido: %w", err)
	}

	prompt, err := w.montarPrompt(ctx, p)
	if err != nil {
		return err
	}

	// GerarParecer never fails — it degrades to advisory fallback text.
	texto := w.gemini.GerarParecer(ctx, p.ChaveAPI, prompt)

	result, err := json.Marshal(dto.AnaliseResponse{Status: "concluida", Texto: texto})
	if err != nil {
		return err
	}
	if err := w.rdb.Set(ctx, AnaliseKey(p.AnaliseID), result, AnaliseResultTTL).Err(); err != nil {
		return fmt.Errorf("analise: salvar resultado: %w", err)
	}

	log.Info().Str("analise_id", p.AnaliseID).Str("produto_id", p.ProdutoID).Msg("parecer gerado")
	return nil
}

// montarPrompt rebuilds the consultant prompt from the simulated scenario.
// Insumo names are resolved best-effort: a dangling id is listed as such
// rather than aborting the narrative.
func (w *AnaliseWorker) montarPrompt(ctx context.Context, p AnalisePayload) (string, error) {
	produtoID, err := uuid.Parse(p.ProdutoID)
	if err != nil {
		return "", fmt.Errorf("analise: produto_id inválido: %w", err)
	}
	produto, err := w.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return "", fmt.Errorf("analise: produto não encontrado: %w", err)
	}

	insumos, err := w.insumoRepo.List(ctx)
	if err != nil {
		return "", err
	}
	nomes := make(map[string]string, len(insumos))
	for _, i := range insumos {
		nomes[i.ID.String()] = i.Nome
	}

	var ficha strings.Builder
	for _, item := range p.NovaFicha {
		nome, ok := nomes[item.InsumoID]
		if !ok {
			nome = "(insumo removido)"
		}
		fmt.Fprintf(&ficha, "- %s: %s %s\n", nome, item.QuantidadeUsada.String(), item.UnidadeUso)
	}

	prompt := fmt.Sprintf(`Atue como um consultor sênior de restaurantes e finanças.
Analise a seguinte simulação de precificação para o produto %q:

Cenário Anterior:
- Custo Direto: R$ %s
- Preço de Venda Sugerido: R$ %s

Novo Cenário (Simulação):
- Custo Direto: R$ %s
- Preço de Venda Sugerido: R$ %s

Lista de Ingredientes (Ficha Técnica):
%s
Margem de Lucro Alvo: %s%%
Impostos/Taxas: %s%%

Dê um parecer curto (máximo 3 parágrafos) sobre esta alteração.
Se o preço subiu, sugira como justificar isso ao cliente ou onde tentar economizar.
Se o preço desceu, sugira se vale a pena manter o preço antigo para aumentar a margem ou repassar o desconto para ganhar volume.`,
		produto.Nome,
		p.Impacto.CustoDiretoAntigo.StringFixed(2),
		p.Impacto.PrecoVendaAntigo.StringFixed(2),
		p.Impacto.CustoDiretoNovo.StringFixed(2),
		p.Impacto.PrecoVendaNovo.StringFixed(2),
		ficha.String(),
		produto.Custos.PercentualLucroDesejado.String(),
		produto.Custos.PercentualImposto.String(),
	)
	return prompt, nil
}
