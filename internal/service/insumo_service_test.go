package service

import (
	"context"
	"testing"

	"github.com/jtruch-maker/precificagourmet/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCriarInsumoNormalizaGramas(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	// 500 g por R$ 12.50 → R$ 25.00 por kg, fator 1000
	lista, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome:             "Queijo Muçarela",
		PrecoEmbalagem:   dec("12.50"),
		TamanhoEmbalagem: dec("500"),
		UnidadeEmbalagem: "g",
	})
	require.NoError(t, err)
	require.Len(t, lista, 1)

	assert.Equal(t, "Queijo Muçarela", lista[0].Nome)
	assert.True(t, dec("25").Equal(lista[0].CustoBase), "custo base: %s", lista[0].CustoBase)
	assert.Equal(t, "kg", lista[0].UnidadeBase)
	assert.Equal(t, int64(1000), lista[0].FatorConversao)
}

func TestCriarInsumoUnidadeContavel(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	lista, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome:             "Ovo",
		PrecoEmbalagem:   dec("12.00"),
		TamanhoEmbalagem: dec("30"),
		UnidadeEmbalagem: "un",
	})
	require.NoError(t, err)
	require.Len(t, lista, 1)

	assert.True(t, dec("0.4").Equal(lista[0].CustoBase))
	assert.Equal(t, "unidade", lista[0].UnidadeBase)
	assert.Equal(t, int64(1), lista[0].FatorConversao)
}

func TestCriarInsumoRejeitaTamanhoZero(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome:             "Farinha",
		PrecoEmbalagem:   dec("5.00"),
		TamanhoEmbalagem: decimal.Zero,
		UnidadeEmbalagem: "kg",
	})
	require.ErrorIs(t, err, ErrEntradaInvalida)
	assert.Zero(t, repo.created, "nada deve ser persistido quando a entrada é inválida")
}

func TestCriarInsumoRejeitaPrecoNegativo(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome:             "Farinha",
		PrecoEmbalagem:   dec("-1.00"),
		TamanhoEmbalagem: dec("1"),
		UnidadeEmbalagem: "kg",
	})
	require.ErrorIs(t, err, ErrEntradaInvalida)
	assert.Zero(t, repo.created)
}

func TestCriarInsumoRejeitaUnidadeDesconhecida(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome:             "Farinha",
		PrecoEmbalagem:   dec("5.00"),
		TamanhoEmbalagem: dec("1"),
		UnidadeEmbalagem: "caixa",
	})
	require.ErrorIs(t, err, ErrEntradaInvalida)
	assert.Zero(t, repo.created)
}

func TestCriarInsumoRetornaListaAtualizada(t *testing.T) {
	repo := &stubInsumoRepo{}
	svc := NewInsumoService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome: "Farinha", PrecoEmbalagem: dec("5.00"), TamanhoEmbalagem: dec("1"), UnidadeEmbalagem: "kg",
	})
	require.NoError(t, err)

	lista, err := svc.Criar(context.Background(), dto.CriarInsumoRequest{
		Nome: "Azeite", PrecoEmbalagem: dec("30.00"), TamanhoEmbalagem: dec("500"), UnidadeEmbalagem: "ml",
	})
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
