// Seed carrega um conjunto de demonstração: um usuário, o catálogo de insumos
// e uma Pizza Margherita com ficha técnica completa. Idempotente — roda em
// cima de um banco já populado sem duplicar nada.
package main

import (
	"errors"
	"os"

	"github.com/jtruch-maker/precificagourmet/internal/config"
	"github.com/jtruch-maker/precificagourmet/internal/infra"
	"github.com/jtruch-maker/precificagourmet/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no banco")
	}

	seedUsuario(db)
	insumos := seedInsumos(db)
	seedPizzaMargherita(db, insumos)

	log.Info().Msg("seed concluído")
}

func seedUsuario(db *gorm.DB) {
	const email = "chef@precificagourmet.dev"

	var existing model.Usuario
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info().Str("email", email).Msg("usuário de demonstração já existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("falha ao consultar usuário")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("mudar123"), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao gerar hash da senha")
	}
	u := model.Usuario{
		Nome:         "Chef Demo",
		Email:        email,
		PasswordHash: string(hash),
		Activo:       true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal().Err(err).Msg("falha ao criar usuário")
	}
	log.Info().Str("email", email).Msg("usuário de demonstração criado (senha: mudar123)")
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedInsumos(db *gorm.DB) map[string]model.Insumo {
	// O fator de conversão é por insumo: a lata de molho rende 2000 g, o maço
	// de manjericão rende 50 folhas.
	catalogo := []model.Insumo{
		{Nome: "Farinha de Trigo", CustoBase: dec("5.00"), UnidadeBase: "kg", FatorConversao: 1000},
		{Nome: "Molho de Tomate (lata 2 kg)", CustoBase: dec("16.00"), UnidadeBase: "lata", FatorConversao: 2000},
		{Nome: "Queijo Muçarela", CustoBase: dec("28.00"), UnidadeBase: "kg", FatorConversao: 1000},
		{Nome: "Azeite Extravirgem", CustoBase: dec("40.00"), UnidadeBase: "litro", FatorConversao: 1000},
		{Nome: "Manjericão Fresco", CustoBase: dec("2.50"), UnidadeBase: "maço", FatorConversao: 50},
		{Nome: "Ovo", CustoBase: dec("0.40"), UnidadeBase: "unidade", FatorConversao: 1},
	}

	out := make(map[string]model.Insumo, len(catalogo))
	for _, insumo := range catalogo {
		var existing model.Insumo
		err := db.Where("nome = ?", insumo.Nome).First(&existing).Error
		if err == nil {
			out[insumo.Nome] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Msg("falha ao consultar insumo")
		}
		if err := db.Create(&insumo).Error; err != nil {
			log.Fatal().Err(err).Str("insumo", insumo.Nome).Msg("falha ao criar insumo")
		}
		out[insumo.Nome] = insumo
		log.Info().Str("insumo", insumo.Nome).Msg("insumo criado")
	}
	return out
}

func seedPizzaMargherita(db *gorm.DB, insumos map[string]model.Insumo) {
	const nome = "Pizza Margherita"

	var count int64
	db.Model(&model.Produto{}).Where("nome = ?", nome).Count(&count)
	if count > 0 {
		log.Info().Str("produto", nome).Msg("produto de demonstração já existe")
		return
	}

	p := model.Produto{
		Nome: nome,
		Custos: model.CustosOperacionais{
			CustoFixoRateado:        dec("8.00"),
			PercentualImposto:       dec("12"),
			PercentualLucroDesejado: dec("25"),
		},
		Ficha: []model.ItemFichaTecnica{
			{InsumoID: insumos["Farinha de Trigo"].ID, QuantidadeUsada: dec("350"), UnidadeUso: "g", Posicao: 0},
			{InsumoID: insumos["Molho de Tomate (lata 2 kg)"].ID, QuantidadeUsada: dec("120"), UnidadeUso: "g", Posicao: 1},
			{InsumoID: insumos["Queijo Muçarela"].ID, QuantidadeUsada: dec("200"), UnidadeUso: "g", Posicao: 2},
			{InsumoID: insumos["Azeite Extravirgem"].ID, QuantidadeUsada: dec("10"), UnidadeUso: "ml", Posicao: 3},
			{InsumoID: insumos["Manjericão Fresco"].ID, QuantidadeUsada: dec("8"), UnidadeUso: "folha", Posicao: 4},
		},
	}
	if err := db.Create(&p).Error; err != nil {
		log.Fatal().Err(err).Msg("falha ao criar produto")
	}
	log.Info().Str("produto", nome).Msg("produto de demonstração criado")
}
