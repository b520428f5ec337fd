package infra

// pdf.go — printable ficha técnica sheet using go-pdf/fpdf.
// One A5 page per product:
//   - product name header
//   - ingredient table (insumo, quantidade, unidade, custo da linha)
//   - operating-cost block (custo fixo rateado, imposto, lucro alvo)
//   - bold suggested sale price
//
// The output file is saved to storagePath/ficha_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/pricing"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GerarFichaPDF renders the pricing sheet for a product. Ficha lines whose
// insumo is missing from the catalog are printed with a placeholder name and
// zero cost, mirroring the engine's defensive-skip policy.
func GerarFichaPDF(produto *model.Produto, catalogo pricing.Catalogo, custoDireto, preco decimal.Decimal, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ficha_%s.pdf", produto.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Ficha Técnica de Precificação", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, produto.Nome, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Ingredient table ─────────────────────────────────────────────────────
	col1 := contentW * 0.46 // insumo
	col2 := contentW * 0.18 // quantidade
	col3 := contentW * 0.12 // unidade
	col4 := contentW * 0.24 // custo

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Insumo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qtd.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, "Un.", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Custo", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range produto.Ficha {
		nome := "(insumo removido)"
		custo := decimal.Zero
		if insumo, ok := catalogo[item.InsumoID]; ok {
			nome = insumo.Nome
			custo = pricing.CustoItem(pricing.ItemFicha{
				InsumoID:        item.InsumoID,
				QuantidadeUsada: item.QuantidadeUsada,
			}, insumo)
		}
		if len(nome) > 30 {
			nome = nome[:29] + "…"
		}
		pdf.CellFormat(col1, 6, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.QuantidadeUsada.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, item.UnidadeUso, "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "R$ "+custo.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Cost configuration ───────────────────────────────────────────────────
	labelW := contentW * 0.64
	valueW := contentW * 0.36

	row := func(label, value string) {
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	row("Custo direto (matéria-prima):", "R$ "+custoDireto.StringFixed(2))
	row("Custo fixo rateado:", "R$ "+produto.Custos.CustoFixoRateado.StringFixed(2))
	row("Impostos e taxas:", produto.Custos.PercentualImposto.String()+"%")
	row("Margem de lucro alvo:", produto.Custos.PercentualLucroDesejado.String()+"%")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	row("PREÇO DE VENDA SUGERIDO:", "R$ "+preco.StringFixed(2))

	custosEngine := pricing.Custos{
		CustoFixoRateado:        produto.Custos.CustoFixoRateado,
		PercentualImposto:       produto.Custos.PercentualImposto,
		PercentualLucroDesejado: produto.Custos.PercentualLucroDesejado,
	}
	if pricing.MargemDegenerada(custosEngine) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 5, "Atenção: imposto + lucro ≥ 100% — preço saturado em zero.", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
