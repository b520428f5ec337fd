package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnidadeCompra is the unit in which a package is purchased.
type UnidadeCompra string

const (
	CompraKg UnidadeCompra = "kg"
	CompraG  UnidadeCompra = "g"
	CompraL  UnidadeCompra = "l"
	CompraMl UnidadeCompra = "ml"
	CompraUn UnidadeCompra = "un"
)

// Canonical base units stored on insumos.
const (
	UnidadeKg      = "kg"
	UnidadeLitro   = "litro"
	UnidadeUnidade = "unidade"
)

var mil = decimal.NewFromInt(1000)

// Normalizacao is the canonical unit-cost produced from a purchase.
type Normalizacao struct {
	CustoBase      decimal.Decimal
	UnidadeBase    string
	FatorConversao int64
}

// Normalizar converts a purchased package (price, size, unit) into a cost per
// canonical base unit (kg for mass, litro for volume, unidade for countables)
// plus the conversion factor to ficha técnica usage units (1000 for mass and
// volume, 1 for countables).
//
// Normalizar performs no input validation: a zero tamanho panics on division.
// Callers must reject zero/negative sizes before calling (see InsumoService).
func Normalizar(preco, tamanho decimal.Decimal, unidade UnidadeCompra) (Normalizacao, error) {
	porPacote := preco.Div(tamanho)

	switch unidade {
	case CompraKg:
		return Normalizacao{CustoBase: porPacote, UnidadeBase: UnidadeKg, FatorConversao: 1000}, nil
	case CompraG:
		return Normalizacao{CustoBase: porPacote.Mul(mil), UnidadeBase: UnidadeKg, FatorConversao: 1000}, nil
	case CompraL:
		return Normalizacao{CustoBase: porPacote, UnidadeBase: UnidadeLitro, FatorConversao: 1000}, nil
	case CompraMl:
		return Normalizacao{CustoBase: porPacote.Mul(mil), UnidadeBase: UnidadeLitro, FatorConversao: 1000}, nil
	case CompraUn:
		return Normalizacao{CustoBase: porPacote, UnidadeBase: UnidadeUnidade, FatorConversao: 1}, nil
	default:
		return Normalizacao{}, fmt.Errorf("unidade de compra desconhecida: %q", unidade)
	}
}
