package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jtruch-maker/precificagourmet/internal/infra"
	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"
	"github.com/jtruch-maker/precificagourmet/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EmailPayload identifies which product's ficha to render and where to send it.
type EmailPayload struct {
	ProdutoID string `json:"produto_id"`
	Email     string `json:"email"`
}

// EmailWorker renders the ficha técnica PDF and mails it.
type EmailWorker struct {
	produtoRepo repository.ProdutoRepository
	insumoRepo  repository.InsumoRepository
	mailer      *infra.Mailer
	pdfPath     string
}

func NewEmailWorker(
	produtoRepo repository.ProdutoRepository,
	insumoRepo repository.InsumoRepository,
	mailer *infra.Mailer,
	pdfPath string,
) *EmailWorker {
	return &EmailWorker{produtoRepo: produtoRepo, insumoRepo: insumoRepo, mailer: mailer, pdfPath: pdfPath}
}

func (w *EmailWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var p EmailPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("email: payload inválido: %w", err)
	}

	produtoID, err := uuid.Parse(p.ProdutoID)
	if err != nil {
		return fmt.Errorf("email: produto_id inválido: %w", err)
	}
	produto, err := w.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return fmt.Errorf("email: produto não encontrado: %w", err)
	}
	insumos, err := w.insumoRepo.List(ctx)
	if err != nil {
		return err
	}

	catalogo := catalogoDe(insumos)
	ficha := fichaDe(produto)
	custos := pricing.Custos{
		CustoFixoRateado:        produto.Custos.CustoFixoRateado,
		PercentualImposto:       produto.Custos.PercentualImposto,
		PercentualLucroDesejado: produto.Custos.PercentualLucroDesejado,
	}
	custoDireto := pricing.CustoDiretoTotal(ficha, catalogo)
	preco := pricing.PrecoVenda(custoDireto, custos)

	pdfFile, err := infra.GerarFichaPDF(produto, catalogo, custoDireto, preco, w.pdfPath)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Ficha técnica — %s", produto.Nome)
	body := fmt.Sprintf("Segue em anexo a ficha técnica de precificação de %q.\nPreço de venda sugerido: R$ %s.",
		produto.Nome, preco.StringFixed(2))
	if err := w.mailer.SendFicha(p.Email, subject, body, pdfFile); err != nil {
		return fmt.Errorf("email: envio falhou: %w", err)
	}

	log.Info().Str("produto_id", p.ProdutoID).Str("para", p.Email).Msg("ficha enviada por email")
	return nil
}

func catalogoDe(insumos []model.Insumo) pricing.Catalogo {
	itens := make([]pricing.Insumo, 0, len(insumos))
	for _, i := range insumos {
		itens = append(itens, pricing.Insumo{
			ID:             i.ID,
			Nome:           i.Nome,
			CustoBase:      i.CustoBase,
			UnidadeBase:    i.UnidadeBase,
			FatorConversao: i.FatorConversao,
		})
	}
	return pricing.NovoCatalogo(itens)
}

func fichaDe(p *model.Produto) []pricing.ItemFicha {
	ficha := make([]pricing.ItemFicha, 0, len(p.Ficha))
	for _, item := range p.Ficha {
		ficha = append(ficha, pricing.ItemFicha{
			InsumoID:        item.InsumoID,
			QuantidadeUsada: item.QuantidadeUsada,
			UnidadeUso:      item.UnidadeUso,
		})
	}
	return ficha
}
