package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/infra"
	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"
	"github.com/jtruch-maker/precificagourmet/internal/repository"
	"github.com/jtruch-maker/precificagourmet/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	precoCachePrefix = "preco:"
	precoCacheTTL    = 10 * time.Minute
)

// ProdutoService manages products, their fichas técnicas and operating costs,
// and derives the priced views. Every mutation busts the product's cached price.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)

	// Excluir removes the product and returns the remaining list.
	Excluir(ctx context.Context, id uuid.UUID) ([]dto.ProdutoResponse, error)

	// AtualizarFicha replaces the whole ficha técnica (last-write-wins).
	AtualizarFicha(ctx context.Context, id uuid.UUID, req dto.AtualizarFichaRequest) (*dto.ProdutoResponse, error)
	AtualizarCustos(ctx context.Context, id uuid.UUID, req dto.AtualizarCustosRequest) (*dto.ProdutoResponse, error)

	// ObterPreco is the hot read path — served from Redis when possible.
	ObterPreco(ctx context.Context, id uuid.UUID) (*dto.PrecoResponse, error)

	// GerarFichaPDF renders the pricing sheet and returns the file path.
	GerarFichaPDF(ctx context.Context, id uuid.UUID) (string, error)

	// EnviarFicha enqueues the PDF-by-email job; delivery is asynchronous.
	EnviarFicha(ctx context.Context, id uuid.UUID, req dto.EnviarFichaRequest) error
}

type produtoService struct {
	produtos   repository.ProdutoRepository
	insumos    repository.InsumoRepository
	rdb        *redis.Client // nil disables caching (unit tests)
	dispatcher *worker.Dispatcher
	pdfPath    string
}

func NewProdutoService(
	produtos repository.ProdutoRepository,
	insumos repository.InsumoRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) ProdutoService {
	return &produtoService{
		produtos:   produtos,
		insumos:    insumos,
		rdb:        rdb,
		dispatcher: dispatcher,
		pdfPath:    pdfPath,
	}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome: req.Nome,
		Custos: model.CustosOperacionais{
			CustoFixoRateado:        decimal.Zero,
			PercentualImposto:       decimal.Zero,
			PercentualLucroDesejado: decimal.NewFromInt(20),
		},
	}
	if err := s.produtos.Create(ctx, p); err != nil {
		return nil, err
	}
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, catalogo), nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.produtos.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		out = append(out, *s.toResponse(&produtos[i], catalogo))
	}
	return out, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, catalogo), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if err := s.produtos.Save(ctx, p); err != nil {
		return nil, err
	}
	s.bustPreco(ctx, id)
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, catalogo), nil
}

func (s *produtoService) Excluir(ctx context.Context, id uuid.UUID) ([]dto.ProdutoResponse, error) {
	if _, err := s.buscar(ctx, id); err != nil {
		return nil, err
	}
	if err := s.produtos.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.bustPreco(ctx, id)
	return s.Listar(ctx)
}

func (s *produtoService) AtualizarFicha(ctx context.Context, id uuid.UUID, req dto.AtualizarFichaRequest) (*dto.ProdutoResponse, error) {
	if _, err := s.buscar(ctx, id); err != nil {
		return nil, err
	}

	itens := make([]model.ItemFichaTecnica, 0, len(req.Itens))
	for _, item := range req.Itens {
		insumoID, err := uuid.Parse(item.InsumoID)
		if err != nil {
			return nil, ErrEntradaInvalida
		}
		itens = append(itens, model.ItemFichaTecnica{
			InsumoID:        insumoID,
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
		})
	}
	if err := s.produtos.ReplaceFicha(ctx, id, itens); err != nil {
		return nil, err
	}
	s.bustPreco(ctx, id)
	return s.ObterPorID(ctx, id)
}

func (s *produtoService) AtualizarCustos(ctx context.Context, id uuid.UUID, req dto.AtualizarCustosRequest) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CustoFixoRateado.Sign() < 0 {
		return nil, ErrEntradaInvalida
	}

	p.Custos = model.CustosOperacionais{
		CustoFixoRateado:        req.CustoFixoRateado,
		PercentualImposto:       req.PercentualImposto,
		PercentualLucroDesejado: req.PercentualLucroDesejado,
	}
	if err := s.produtos.Save(ctx, p); err != nil {
		return nil, err
	}
	s.bustPreco(ctx, id)
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, catalogo), nil
}

func (s *produtoService) ObterPreco(ctx context.Context, id uuid.UUID) (*dto.PrecoResponse, error) {
	cacheKey := precoCachePrefix + id.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.PrecoResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return nil, err
	}

	custos := custosDe(p)
	custoDireto := pricing.CustoDiretoTotal(fichaDe(p), catalogo)
	resp := &dto.PrecoResponse{
		ProdutoID:        p.ID.String(),
		Nome:             p.Nome,
		CustoDireto:      custoDireto,
		PrecoSugerido:    pricing.PrecoVenda(custoDireto, custos),
		MargemDegenerada: pricing.MargemDegenerada(custos),
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, precoCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("produto_id", id.String()).Msg("falha ao cachear preço")
			}
		}
	}
	return resp, nil
}

func (s *produtoService) GerarFichaPDF(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return "", err
	}
	catalogo, err := s.carregarCatalogo(ctx)
	if err != nil {
		return "", err
	}
	custos := custosDe(p)
	custoDireto := pricing.CustoDiretoTotal(fichaDe(p), catalogo)
	preco := pricing.PrecoVenda(custoDireto, custos)
	return infra.GerarFichaPDF(p, catalogo, custoDireto, preco, s.pdfPath)
}

func (s *produtoService) EnviarFicha(ctx context.Context, id uuid.UUID, req dto.EnviarFichaRequest) error {
	if _, err := s.buscar(ctx, id); err != nil {
		return err
	}
	return s.dispatcher.EnqueueEmail(ctx, worker.EmailPayload{
		ProdutoID: id.String(),
		Email:     req.Email,
	})
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (s *produtoService) buscar(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	p, err := s.produtos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *produtoService) carregarCatalogo(ctx context.Context) (pricing.Catalogo, error) {
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
	return pricing.NovoCatalogo(itens), nil
}

func (s *produtoService) bustPreco(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, precoCachePrefix+id.String()).Err(); err != nil {
		log.Warn().Err(err).Str("produto_id", id.String()).Msg("falha ao invalidar cache de preço")
	}
}

func (s *produtoService) toResponse(p *model.Produto, catalogo pricing.Catalogo) *dto.ProdutoResponse {
	ficha := make([]dto.ItemFichaResponse, 0, len(p.Ficha))
	for _, item := range p.Ficha {
		line := dto.ItemFichaResponse{
			InsumoID:        item.InsumoID.String(),
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
			Custo:           decimal.Zero,
		}
		if insumo, ok := catalogo[item.InsumoID]; ok {
			line.Insumo = insumo.Nome
			line.Custo = pricing.CustoItem(pricing.ItemFicha{
				InsumoID:        item.InsumoID,
				QuantidadeUsada: item.QuantidadeUsada,
				UnidadeUso:      item.UnidadeUso,
			}, insumo)
		} else {
			// A dangling reference is tolerated but worth surfacing.
			log.Warn().
				Str("produto_id", p.ID.String()).
				Str("insumo_id", item.InsumoID.String()).
				Msg("ficha técnica referencia insumo inexistente")
			line.Insumo = "(insumo removido)"
		}
		ficha = append(ficha, line)
	}

	custos := custosDe(p)
	custoDireto := pricing.CustoDiretoTotal(fichaDe(p), catalogo)

	return &dto.ProdutoResponse{
		ID:   p.ID.String(),
		Nome: p.Nome,
		Custos: dto.CustosResponse{
			CustoFixoRateado:        p.Custos.CustoFixoRateado,
			PercentualImposto:       p.Custos.PercentualImposto,
			PercentualLucroDesejado: p.Custos.PercentualLucroDesejado,
		},
		Ficha:            ficha,
		CustoDireto:      custoDireto,
		PrecoSugerido:    pricing.PrecoVenda(custoDireto, custos),
		MargemDegenerada: pricing.MargemDegenerada(custos),
	}
}

func custosDe(p *model.Produto) pricing.Custos {
	return pricing.Custos{
		CustoFixoRateado:        p.Custos.CustoFixoRateado,
		PercentualImposto:       p.Custos.PercentualImposto,
		PercentualLucroDesejado: p.Custos.PercentualLucroDesejado,
	}
}

func fichaDe(p *model.Produto) []pricing.ItemFicha {
	ficha := make([]pricing.ItemFicha, 0, len(p.Ficha))
	for _, item := range p.Ficha {
		ficha = append(ficha, pricing.ItemFicha{
			InsumoID:        item.InsumoID,
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
		})
	}
	return ficha
}
