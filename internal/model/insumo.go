package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insumo is a purchasable raw material. CustoBase is the cost of ONE unit of
// UnidadeBase; FatorConversao maps that base unit to the finer unit used in
// fichas técnicas (1000 when base is kg and usage is g, 1 for countable units).
type Insumo struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome           string          `gorm:"index;not null"`
	CustoBase      decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	UnidadeBase    string          `gorm:"not null"`
	FatorConversao int64           `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
