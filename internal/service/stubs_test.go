package service

import (
	"context"

	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── insumo stub ─────────────────────────────────────────────────────────────

type stubInsumoRepo struct {
	itens   []model.Insumo
	created int
	err     error
}

var _ repository.InsumoRepository = (*stubInsumoRepo)(nil)

func (s *stubInsumoRepo) Create(_ context.Context, i *model.Insumo) error {
	if s.err != nil {
		return s.err
	}
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	s.itens = append(s.itens, *i)
	s.created++
	return nil
}

func (s *stubInsumoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Insumo, error) {
	for idx := range s.itens {
		if s.itens[idx].ID == id {
			return &s.itens[idx], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubInsumoRepo) List(_ context.Context) ([]model.Insumo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.itens, nil
}

// ─── produto stub ────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (s *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.produtos[p.ID] = p
	return nil
}

func (s *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := s.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(s.produtos))
	for _, p := range s.produtos {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProdutoRepo) Save(_ context.Context, p *model.Produto) error {
	s.produtos[p.ID] = p
	return nil
}

func (s *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.produtos, id)
	return nil
}

func (s *stubProdutoRepo) ReplaceFicha(_ context.Context, produtoID uuid.UUID, itens []model.ItemFichaTecnica) error {
	p, ok := s.produtos[produtoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range itens {
		itens[i].ProdutoID = produtoID
		itens[i].Posicao = i
	}
	p.Ficha = itens
	return nil
}

// ─── usuario stub ────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios []model.Usuario
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func (s *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.usuarios = append(s.usuarios, *u)
	return nil
}

func (s *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for idx := range s.usuarios {
		if s.usuarios[idx].ID == id {
			return &s.usuarios[idx], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for idx := range s.usuarios {
		if s.usuarios[idx].Email == email {
			return &s.usuarios[idx], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
