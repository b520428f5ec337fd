package repository

import (
	"context"

	"github.com/jtruch-maker/precificagourmet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsumoRepository defines the data access contract for ingredients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type InsumoRepository interface {
	Create(ctx context.Context, i *model.Insumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error)
	List(ctx context.Context) ([]model.Insumo, error)
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) Create(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *insumoRepo) List(ctx context.Context) ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&insumos).Error
	return insumos, err
}
