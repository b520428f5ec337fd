package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustosOperacionais is embedded into Produto: the three knobs that, together
// with the direct cost, fully determine the suggested sale price.
type CustosOperacionais struct {
	CustoFixoRateado        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PercentualImposto       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PercentualLucroDesejado decimal.Decimal `gorm:"type:decimal(5,2);not null;default:20"`
}

// Produto owns its ficha técnica rows and cost configuration. The stored ficha
// is always the baseline for pricing; simulations never touch it.
type Produto struct {
	ID     uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome   string             `gorm:"index;not null"`
	Custos CustosOperacionais `gorm:"embedded;embeddedPrefix:custos_"`
	Ficha  []ItemFichaTecnica `gorm:"foreignKey:ProdutoID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemFichaTecnica is one line of a recipe. InsumoID is a weak reference —
// deliberately no DB-level FK to insumos, so catalog edits never dangle a
// ficha. Resolution happens at computation time; a miss contributes zero cost.
type ItemFichaTecnica struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	InsumoID        uuid.UUID       `gorm:"type:uuid;not null"`
	QuantidadeUsada decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	UnidadeUso      string          `gorm:"not null"`
	// Posicao preserves display order; it carries no pricing meaning.
	Posicao int `gorm:"not null;default:0"`
}
