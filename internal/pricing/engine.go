// Package pricing implements the menu-item pricing engine: per-line ingredient
// cost, direct cost aggregation, the markup-divisor sale price formula and the
// before/after impact analysis.
//
// The package is pure by design — no storage, no logging, no framework
// dependencies. Callers load the catalog and the ficha técnica, the engine
// only computes.
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insumo is the engine's view of an ingredient: cost of one base unit and the
// conversion factor to the finer unit used in ficha técnica quantities.
type Insumo struct {
	ID             uuid.UUID
	Nome           string
	CustoBase      decimal.Decimal
	UnidadeBase    string
	FatorConversao int64
}

// ItemFicha is one recipe line. InsumoID is resolved against a Catalogo at
// computation time; it is never an owning reference.
type ItemFicha struct {
	InsumoID        uuid.UUID
	QuantidadeUsada decimal.Decimal
	UnidadeUso      string
}

// Custos holds the operating-cost configuration of a product.
type Custos struct {
	CustoFixoRateado        decimal.Decimal
	PercentualImposto       decimal.Decimal
	PercentualLucroDesejado decimal.Decimal
}

// Catalogo indexes insumos by id for ficha resolution.
type Catalogo map[uuid.UUID]Insumo

// NovoCatalogo builds a Catalogo from a list of insumos.
func NovoCatalogo(insumos []Insumo) Catalogo {
	c := make(Catalogo, len(insumos))
	for _, i := range insumos {
		c[i.ID] = i
	}
	return c
}

var (
	um  = decimal.NewFromInt(1)
	cem = decimal.NewFromInt(100)
)

// CustoItem returns the monetary cost of one ficha line:
// (CustoBase / FatorConversao) * QuantidadeUsada.
// An insumo with a non-positive conversion factor contributes zero, the same
// defensive-skip policy applied to dangling references.
func CustoItem(item ItemFicha, insumo Insumo) decimal.Decimal {
	if insumo.FatorConversao <= 0 {
		return decimal.Zero
	}
	return insumo.CustoBase.
		Div(decimal.NewFromInt(insumo.FatorConversao)).
		Mul(item.QuantidadeUsada)
}

// CustoDiretoTotal sums CustoItem over all ficha lines. Lines referencing an
// insumo absent from the catalog are skipped — a dangling reference never
// breaks the total. The sum is order-independent.
func CustoDiretoTotal(ficha []ItemFicha, catalogo Catalogo) decimal.Decimal {
	total := decimal.Zero
	for _, item := range ficha {
		insumo, ok := catalogo[item.InsumoID]
		if !ok {
			continue
		}
		total = total.Add(CustoItem(item, insumo))
	}
	return total
}

// divisorMarkup returns 1 - (imposto + lucro)/100.
func divisorMarkup(c Custos) decimal.Decimal {
	return um.Sub(c.PercentualImposto.Add(c.PercentualLucroDesejado).Div(cem))
}

// MargemDegenerada reports whether imposto + lucro >= 100%, the configuration
// under which PrecoVenda saturates to zero. Callers that need to distinguish
// "legitimately zero" from "invalid margin config" should check this.
func MargemDegenerada(c Custos) bool {
	return divisorMarkup(c).Sign() <= 0
}

// PrecoVenda derives the suggested sale price:
// PV = (custoDireto + custoFixoRateado) / (1 - (imposto + lucro)/100).
// When the divisor is zero or negative the function returns exactly zero
// instead of an infinite or negative price. This saturation keeps callers
// numerically stable; it is not an error signal (see MargemDegenerada).
func PrecoVenda(custoDireto decimal.Decimal, c Custos) decimal.Decimal {
	divisor := divisorMarkup(c)
	if divisor.Sign() <= 0 {
		return decimal.Zero
	}
	return custoDireto.Add(c.CustoFixoRateado).Div(divisor)
}

// AnaliseImpacto is the computed comparison between a product's stored ficha
// and a simulated one. Pure value object — recomputed on demand, never stored.
type AnaliseImpacto struct {
	CustoDiretoAntigo decimal.Decimal `json:"custo_direto_antigo"`
	PrecoVendaAntigo  decimal.Decimal `json:"preco_venda_antigo"`
	CustoDiretoNovo   decimal.Decimal `json:"custo_direto_novo"`
	PrecoVendaNovo    decimal.Decimal `json:"preco_venda_novo"`
	DiferencaPreco    decimal.Decimal `json:"diferenca_preco"`
	Mensagem          string          `json:"mensagem"`
}

func formatMoney(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// AnalisarImpacto compares the baseline ficha against a candidate one. Both
// sides use the SAME operating costs — simulation varies quantities only.
// The three-way message classification (rise / fall / no change) and the
// two-decimal money formatting are part of the user-visible contract.
func AnalisarImpacto(fichaAtual []ItemFicha, custos Custos, novaFicha []ItemFicha, catalogo Catalogo) AnaliseImpacto {
	custoDiretoAntigo := CustoDiretoTotal(fichaAtual, catalogo)
	precoAntigo := PrecoVenda(custoDiretoAntigo, custos)

	custoDiretoNovo := CustoDiretoTotal(novaFicha, catalogo)
	precoNovo := PrecoVenda(custoDiretoNovo, custos)

	diferenca := precoNovo.Sub(precoAntigo)

	var mensagem string
	switch diferenca.Sign() {
	case 1:
		mensagem = "A alteração aumentou o custo direto em " + formatMoney(custoDiretoNovo.Sub(custoDiretoAntigo)) +
			". O preço de venda precisa subir " + formatMoney(diferenca) +
			" para manter a margem de " + custos.PercentualLucroDesejado.String() + "%."
	case -1:
		mensagem = "A alteração gerou uma economia de " + formatMoney(custoDiretoAntigo.Sub(custoDiretoNovo)) +
			" no custo direto. Você pode reduzir o preço em " + formatMoney(diferenca.Abs()) +
			" e manter a mesma margem."
	default:
		mensagem = "Nenhuma alteração significativa no preço final."
	}

	return AnaliseImpacto{
		CustoDiretoAntigo: custoDiretoAntigo,
		PrecoVendaAntigo:  precoAntigo,
		CustoDiretoNovo:   custoDiretoNovo,
		PrecoVendaNovo:    precoNovo,
		DiferencaPreco:    diferenca,
		Mensagem:          mensagem,
	}
}
