package service

import (
	"context"
	"fmt"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"
	"github.com/jtruch-maker/precificagourmet/internal/repository"
)

// InsumoService registers and lists ingredients. Registration normalizes the
// purchase data (price, package size, unit) into a canonical base-unit cost
// before anything touches the store.
type InsumoService interface {
	// Criar persists a new insumo and returns the updated full list, so the
	// caller always renders a consistent catalog after a write.
	Criar(ctx context.Context, req dto.CriarInsumoRequest) ([]dto.InsumoResponse, error)
	Listar(ctx context.Context) ([]dto.InsumoResponse, error)
}

type insumoService struct {
	insumos repository.InsumoRepository
}

func NewInsumoService(insumos repository.InsumoRepository) InsumoService {
	return &insumoService{insumos: insumos}
}

func (s *insumoService) Criar(ctx context.Context, req dto.CriarInsumoRequest) ([]dto.InsumoResponse, error) {
	// Guard before the store AND before Normalizar: the normalizer divides by
	// the package size and must never see zero.
	if req.TamanhoEmbalagem.Sign() <= 0 {
		return nil, fmt.Errorf("%w: tamanho da embalagem deve ser maior que zero", ErrEntradaInvalida)
	}
	if req.PrecoEmbalagem.Sign() < 0 {
		return nil, fmt.Errorf("%w: preço da embalagem não pode ser negativo", ErrEntradaInvalida)
	}

	n, err := pricing.Normalizar(req.PrecoEmbalagem, req.TamanhoEmbalagem, pricing.UnidadeCompra(req.UnidadeEmbalagem))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntradaInvalida, err)
	}

	insumo := &model.Insumo{
		Nome:           req.Nome,
		CustoBase:      n.CustoBase,
		UnidadeBase:    n.UnidadeBase,
		FatorConversao: n.FatorConversao,
	}
	if err := s.insumos.Create(ctx, insumo); err != nil {
		return nil, err
	}

	return s.Listar(ctx)
}

func (s *insumoService) Listar(ctx context.Context) ([]dto.InsumoResponse, error) {
	insumos, err := s.insumos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsumoResponse, 0, len(insumos))
	for _, i := range insumos {
		out = append(out, dto.InsumoResponse{
			ID:             i.ID.String(),
			Nome:           i.Nome,
			CustoBase:      i.CustoBase,
			UnidadeBase:    i.UnidadeBase,
			FatorConversao: i.FatorConversao,
		})
	}
	return out, nil
}
