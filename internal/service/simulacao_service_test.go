package service

import (
	"context"
	"testing"

	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimularDobrandoIngrediente(t *testing.T) {
	farinha := farinhaInsumo()
	produtos := newStubProdutoRepo()
	p := pizzaProduto(farinha.ID)
	require.NoError(t, produtos.Create(context.Background(), p))

	svc := NewSimulacaoService(produtos, &stubInsumoRepo{itens: []model.Insumo{farinha}}, nil, nil)

	resp, err := svc.Simular(context.Background(), p.ID, dto.SimulacaoRequest{
		Itens: []dto.ItemFichaRequest{
			{InsumoID: farinha.ID.String(), QuantidadeUsada: dec("700"), UnidadeUso: "g"},
		},
	})
	require.NoError(t, err)

	imp := resp.Impacto
	assert.Equal(t, "1.75", imp.CustoDiretoAntigo.StringFixed(2))
	assert.Equal(t, "3.50", imp.CustoDiretoNovo.StringFixed(2))
	assert.Contains(t, imp.Mensagem, "aumentou o custo direto em R$ 1.75")
	assert.Contains(t, imp.Mensagem, "precisa subir R$ 2.78")
	assert.Contains(t, imp.Mensagem, "margem de 25%")
	assert.Empty(t, resp.AnaliseID, "sem gerar_analise não há job enfileirado")
}

func TestSimularUsaCustosArmazenados(t *testing.T) {
	farinha := farinhaInsumo()
	produtos := newStubProdutoRepo()
	p := pizzaProduto(farinha.ID)
	require.NoError(t, produtos.Create(context.Background(), p))

	svc := NewSimulacaoService(produtos, &stubInsumoRepo{itens: []model.Insumo{farinha}}, nil, nil)

	// Ficha idêntica: ambos os lados usam os MESMOS custos operacionais,
	// logo a diferença é exatamente zero.
	resp, err := svc.Simular(context.Background(), p.ID, dto.SimulacaoRequest{
		Itens: []dto.ItemFichaRequest{
			{InsumoID: farinha.ID.String(), QuantidadeUsada: dec("350"), UnidadeUso: "g"},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Impacto.DiferencaPreco.IsZero())
	assert.Equal(t, "Nenhuma alteração significativa no preço final.", resp.Impacto.Mensagem)
}

func TestSimularProdutoInexistente(t *testing.T) {
	svc := NewSimulacaoService(newStubProdutoRepo(), &stubInsumoRepo{}, nil, nil)

	_, err := svc.Simular(context.Background(), uuid.New(), dto.SimulacaoRequest{})
	require.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestSimularRejeitaUUIDInvalido(t *testing.T) {
	produtos := newStubProdutoRepo()
	p := pizzaProduto(uuid.New())
	require.NoError(t, produtos.Create(context.Background(), p))

	svc := NewSimulacaoService(produtos, &stubInsumoRepo{}, nil, nil)

	_, err := svc.Simular(context.Background(), p.ID, dto.SimulacaoRequest{
		Itens: []dto.ItemFichaRequest{{InsumoID: "xxx"}},
	})
	require.ErrorIs(t, err, ErrEntradaInvalida)
}
