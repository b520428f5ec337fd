package repository

import (
	"context"

	"github.com/jtruch-maker/precificagourmet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products. A Produto
// is loaded and saved as a whole aggregate: ficha técnica rows travel with it,
// ordered by posicao.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	Save(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceFicha swaps the product's entire ficha técnica inside one
	// transaction — a whole-record overwrite, last-write-wins.
	ReplaceFicha(ctx context.Context, produtoID uuid.UUID, itens []model.ItemFichaTecnica) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).
		Preload("Ficha", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Preload("Ficha", func(db *gorm.DB) *gorm.DB { return db.Order("posicao ASC") }).
		Order("nome ASC").
		Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Save(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Omit("Ficha").Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", id).Delete(&model.ItemFichaTecnica{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Produto{}, id).Error
	})
}

func (r *produtoRepo) ReplaceFicha(ctx context.Context, produtoID uuid.UUID, itens []model.ItemFichaTecnica) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", produtoID).Delete(&model.ItemFichaTecnica{}).Error; err != nil {
			return err
		}
		if len(itens) == 0 {
			return nil
		}
		for i := range itens {
			itens[i].ProdutoID = produtoID
			itens[i].Posicao = i
		}
		return tx.Create(&itens).Error
	})
}
