package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// farinha: R$ 5,00 por kg, usada em gramas.
func farinha() Insumo {
	return Insumo{
		ID:             uuid.New(),
		Nome:           "Farinha de Trigo Especial",
		CustoBase:      dec("5.00"),
		UnidadeBase:    UnidadeKg,
		FatorConversao: 1000,
	}
}

func custosPizza() Custos {
	return Custos{
		CustoFixoRateado:        dec("8.00"),
		PercentualImposto:       dec("12"),
		PercentualLucroDesejado: dec("25"),
	}
}

func TestCustoItem_CenarioFarinha(t *testing.T) {
	f := farinha()
	item := ItemFicha{InsumoID: f.ID, QuantidadeUsada: dec("350"), UnidadeUso: "g"}

	custo := CustoItem(item, f)

	// (5.00 / 1000) * 350 = 1.75
	assert.True(t, custo.Equal(dec("1.75")), "custo = %s", custo)
}

func TestCustoItem_LinearNaQuantidade(t *testing.T) {
	f := farinha()
	q1 := ItemFicha{InsumoID: f.ID, QuantidadeUsada: dec("120")}
	q2 := ItemFicha{InsumoID: f.ID, QuantidadeUsada: dec("230")}
	soma := ItemFicha{InsumoID: f.ID, QuantidadeUsada: dec("350")}

	parcelas := CustoItem(q1, f).Add(CustoItem(q2, f))
	direto := CustoItem(soma, f)

	assert.True(t, parcelas.Equal(direto), "%s != %s", parcelas, direto)
}

func TestCustoItem_FatorConversaoInvalido(t *testing.T) {
	f := farinha()
	f.FatorConversao = 0
	item := ItemFicha{InsumoID: f.ID, QuantidadeUsada: dec("350")}

	assert.True(t, CustoItem(item, f).IsZero())
}

func TestCustoDiretoTotal_InsumoAusenteContribuiZero(t *testing.T) {
	f := farinha()
	catalogo := NovoCatalogo([]Insumo{f})

	ficha := []ItemFicha{
		{InsumoID: f.ID, QuantidadeUsada: dec("350")},
		{InsumoID: uuid.New(), QuantidadeUsada: dec("9999")}, // referência pendente
	}

	total := CustoDiretoTotal(ficha, catalogo)
	assert.True(t, total.Equal(dec("1.75")), "total = %s", total)
}

func TestCustoDiretoTotal_IndependenteDaOrdem(t *testing.T) {
	f := farinha()
	queijo := Insumo{ID: uuid.New(), Nome: "Queijo Mussarela", CustoBase: dec("38.00"), UnidadeBase: UnidadeKg, FatorConversao: 1000}
	azeite := Insumo{ID: uuid.New(), Nome: "Azeite", CustoBase: dec("45.00"), UnidadeBase: UnidadeLitro, FatorConversao: 1000}
	catalogo := NovoCatalogo([]Insumo{f, queijo, azeite})

	ficha := []ItemFicha{
		{InsumoID: f.ID, QuantidadeUsada: dec("350")},
		{InsumoID: queijo.ID, QuantidadeUsada: dec("280")},
		{InsumoID: azeite.ID, QuantidadeUsada: dec("15")},
	}
	invertida := []ItemFicha{ficha[2], ficha[0], ficha[1]}

	assert.True(t, CustoDiretoTotal(ficha, catalogo).Equal(CustoDiretoTotal(invertida, catalogo)))
}

func TestPrecoVenda_CenarioPizza(t *testing.T) {
	// divisor = 1 - (12+25)/100 = 0.63 → (1.75 + 8.00) / 0.63 ≈ 15.48
	preco := PrecoVenda(dec("1.75"), custosPizza())

	assert.Equal(t, "15.48", preco.StringFixed(2))
}

func TestPrecoVenda_CrescenteNoCustoDireto(t *testing.T) {
	custos := custosPizza()

	menor := PrecoVenda(dec("1.75"), custos)
	maior := PrecoVenda(dec("3.50"), custos)

	assert.True(t, maior.GreaterThan(menor))
}

func TestPrecoVenda_CrescenteNoCustoFixo(t *testing.T) {
	base := custosPizza()
	maisFixo := custosPizza()
	maisFixo.CustoFixoRateado = dec("12.00")

	assert.True(t, PrecoVenda(dec("1.75"), maisFixo).GreaterThan(PrecoVenda(dec("1.75"), base)))
}

func TestPrecoVenda_MargemDegeneradaSaturaEmZero(t *testing.T) {
	casos := []struct {
		imposto, lucro string
	}{
		{"60", "40"},  // exatamente 100%
		{"70", "50"},  // acima de 100%
		{"100", "25"}, // imposto sozinho já degenera
	}
	for _, tc := range casos {
		custos := Custos{
			CustoFixoRateado:        dec("8.00"),
			PercentualImposto:       dec(tc.imposto),
			PercentualLucroDesejado: dec(tc.lucro),
		}
		preco := PrecoVenda(dec("1.75"), custos)
		assert.True(t, preco.IsZero(), "imposto=%s lucro=%s preco=%s", tc.imposto, tc.lucro, preco)
		assert.True(t, MargemDegenerada(custos))
	}

	assert.False(t, MargemDegenerada(custosPizza()))
}

func TestAnalisarImpacto_SemAlteracao(t *testing.T) {
	f := farinha()
	catalogo := NovoCatalogo([]Insumo{f})
	ficha := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("350"), UnidadeUso: "g"}}

	res := AnalisarImpacto(ficha, custosPizza(), ficha, catalogo)

	assert.True(t, res.DiferencaPreco.IsZero(), "diferenca = %s", res.DiferencaPreco)
	assert.Equal(t, "Nenhuma alteração significativa no preço final.", res.Mensagem)
}

func TestAnalisarImpacto_QuantidadeDobrada(t *testing.T) {
	f := farinha()
	catalogo := NovoCatalogo([]Insumo{f})
	atual := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("350"), UnidadeUso: "g"}}
	dobrada := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("700"), UnidadeUso: "g"}}

	res := AnalisarImpacto(atual, custosPizza(), dobrada, catalogo)

	require.True(t, res.CustoDiretoNovo.Equal(dec("3.50")), "custo novo = %s", res.CustoDiretoNovo)
	assert.Equal(t, 1, res.DiferencaPreco.Sign())
	// aumento de custo direto: 3.50 - 1.75 = 1.75; delta de preço: 1.75/0.63 ≈ 2.78
	assert.Contains(t, res.Mensagem, "aumentou o custo direto em R$ 1.75")
	assert.Contains(t, res.Mensagem, "precisa subir R$ 2.78")
	assert.Contains(t, res.Mensagem, "margem de 25%")
}

func TestAnalisarImpacto_Economia(t *testing.T) {
	f := farinha()
	catalogo := NovoCatalogo([]Insumo{f})
	atual := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("350"), UnidadeUso: "g"}}
	reduzida := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("280"), UnidadeUso: "g"}}

	res := AnalisarImpacto(atual, custosPizza(), reduzida, catalogo)

	assert.Equal(t, -1, res.DiferencaPreco.Sign())
	assert.Contains(t, res.Mensagem, "economia")
	assert.Contains(t, res.Mensagem, "reduzir o preço em R$ "+res.DiferencaPreco.Abs().StringFixed(2))
}

func TestAnalisarImpacto_CustosNaoVariamNaSimulacao(t *testing.T) {
	f := farinha()
	catalogo := NovoCatalogo([]Insumo{f})
	atual := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("350")}}
	nova := []ItemFicha{{InsumoID: f.ID, QuantidadeUsada: dec("700")}}

	res := AnalisarImpacto(atual, custosPizza(), nova, catalogo)

	// ambos os lados usam os MESMOS custos operacionais
	assert.Equal(t, PrecoVenda(res.CustoDiretoAntigo, custosPizza()).String(), res.PrecoVendaAntigo.String())
	assert.Equal(t, PrecoVenda(res.CustoDiretoNovo, custosPizza()).String(), res.PrecoVendaNovo.String())
}
