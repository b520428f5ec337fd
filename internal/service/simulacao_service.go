package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"
	"github.com/jtruch-maker/precificagourmet/internal/repository"
	"github.com/jtruch-maker/precificagourmet/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SimulacaoService runs what-if recipe comparisons. The impact numbers are
// computed synchronously; the optional Gemini parecer runs async through the
// worker pool and is polled by analise id.
type SimulacaoService interface {
	Simular(ctx context.Context, produtoID uuid.UUID, req dto.SimulacaoRequest) (*dto.SimulacaoResponse, error)
	ObterAnalise(ctx context.Context, analiseID string) (*dto.AnaliseResponse, error)
}

type simulacaoService struct {
	produtos   repository.ProdutoRepository
	insumos    repository.InsumoRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

func NewSimulacaoService(
	produtos repository.ProdutoRepository,
	insumos repository.InsumoRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) SimulacaoService {
	return &simulacaoService{produtos: produtos, insumos: insumos, rdb: rdb, dispatcher: dispatcher}
}

func (s *simulacaoService) Simular(ctx context.Context, produtoID uuid.UUID, req dto.SimulacaoRequest) (*dto.SimulacaoResponse, error) {
	p, err := s.produtos.FindByID(ctx, produtoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}

	novaFicha := make([]pricing.ItemFicha, 0, len(req.Itens))
	for _, item := range req.Itens {
		insumoID, err := uuid.Parse(item.InsumoID)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		novaFicha = append(novaFicha, pricing.ItemFicha{
			InsumoID:        insumoID,
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
		})
	}

	insumos, err := s.insumos.List(ctx)
	if err != nil {
		return nil, err
	}
	itens := make([]pricing.Insumo, 0, len(insumos))
	for _, i := range insumos {
		itens = append(itens, pricing.Insumo{
			ID:             i.ID,
			Nome:           i.Nome,
			CustoBase:      i.CustoBase,
			UnidadeBase:    i.UnidadeBase,
			FatorConversao: i.FatorConversao,
		})
	}
	catalogo := pricing.NovoCatalogo(itens)

	impacto := pricing.AnalisarImpacto(fichaDe(p), custosDe(p), novaFicha, catalogo)
	resp := &dto.SimulacaoResponse{Impacto: impacto}

	if req.GerarAnalise {
		analiseID := uuid.NewString()

		// Mark the analise as pendente before enqueueing, so a poll that
		// races the worker still sees a well-defined state.
		pendente, _ := json.Marshal(dto.AnaliseResponse{Status: "pendente"})
		if err := s.rdb.Set(ctx, worker.AnaliseKey(analiseID), pendente, worker.AnaliseResultTTL).Err(); err != nil {
			log.Warn().Err(err).Str("analise_id", analiseID).Msg("falha ao marcar análise pendente")
		}

		payload := worker.AnalisePayload{
			AnaliseID: analiseID,
			ProdutoID: produtoID.String(),
			ChaveAPI:  req.ChaveAPI,
			Impacto:   impacto,
			NovaFicha: req.Itens,
		}
		if err := s.dispatcher.EnqueueAnalise(ctx, payload); err != nil {
			// The simulation result is still valid without the parecer.
			log.Error().Err(err).Str("analise_id", analiseID).Msg("falha ao enfileirar análise")
		} else {
			resp.AnaliseID = analiseID
		}
	}

	return resp, nil
}

func (s *simulacaoService) ObterAnalise(ctx context.Context, analiseID string) (*dto.AnaliseResponse, error) {
	data, err := s.rdb.Get(ctx, worker.AnaliseKey(analiseID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	var resp dto.AnaliseResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
