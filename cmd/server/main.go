package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/config"
	"github.com/jtruch-maker/precificagourmet/internal/infra"
	"github.com/jtruch-maker/precificagourmet/internal/repository"
	"github.com/jtruch-maker/precificagourmet/internal/router"
	"github.com/jtruch-maker/precificagourmet/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no banco")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no redis")
	}

	produtoRepo := repository.NewProdutoRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)

	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	gemini := infra.NewGeminiClient(cfg, cb)
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	worker.StartWorkerPool(workerCtx, rdb, &worker.Handlers{
		Analise: worker.NewAnaliseWorker(produtoRepo, insumoRepo, gemini, rdb),
		Email:   worker.NewEmailWorker(produtoRepo, insumoRepo, mailer, cfg.PDFStoragePath),
	}, cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.New(cfg, db, rdb, dispatcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("servidor encerrou com erro")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("encerrando...")

	stopWorkers()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown forçado")
	}
	log.Info().Msg("servidor encerrado")
}
