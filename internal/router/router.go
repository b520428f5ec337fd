package router

import (
	"github.com/jtruch-maker/precificagourmet/internal/config"
	"github.com/jtruch-maker/precificagourmet/internal/handler"
	"github.com/jtruch-maker/precificagourmet/internal/middleware"
	"github.com/jtruch-maker/precificagourmet/internal/repository"
	"github.com/jtruch-maker/precificagourmet/internal/service"
	"github.com/jtruch-maker/precificagourmet/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New is the composition root: repositories, services and handlers are wired
// here and nowhere else.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	usuarioRepo := repository.NewUsuarioRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)

	authSvc := service.NewAuthService(usuarioRepo, cfg)
	insumoSvc := service.NewInsumoService(insumoRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, insumoRepo, rdb, dispatcher, cfg.PDFStoragePath)
	simulacaoSvc := service.NewSimulacaoService(produtoRepo, insumoRepo, rdb, dispatcher)

	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	insumoH := handler.NewInsumoHandler(insumoSvc)
	produtoH := handler.NewProdutoHandler(produtoSvc)
	simulacaoH := handler.NewSimulacaoHandler(simulacaoSvc)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	r.GET("/health", healthH.Check)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
			auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
			auth.GET("/me", middleware.JWTAuth(cfg.JWTSecret), authH.Perfil)
		}

		protegido := v1.Group("", middleware.JWTAuth(cfg.JWTSecret))
		{
			protegido.GET("/insumos", insumoH.Listar)
			protegido.POST("/insumos", insumoH.Criar)

			protegido.GET("/produtos", produtoH.Listar)
			protegido.POST("/produtos", produtoH.Criar)
			protegido.GET("/produtos/:id", produtoH.ObterPorID)
			protegido.PUT("/produtos/:id", produtoH.Atualizar)
			protegido.DELETE("/produtos/:id", produtoH.Excluir)

			protegido.PUT("/produtos/:id/ficha-tecnica", produtoH.AtualizarFicha)
			protegido.PUT("/produtos/:id/custos", produtoH.AtualizarCustos)
			protegido.GET("/produtos/:id/preco", produtoH.ObterPreco)
			protegido.GET("/produtos/:id/ficha.pdf", produtoH.FichaPDF)
			protegido.POST("/produtos/:id/enviar-ficha", produtoH.EnviarFicha)

			protegido.POST("/produtos/:id/simulacao", simulacaoH.Simular)
			protegido.GET("/simulacoes/:id/analise", simulacaoH.ObterAnalise)
		}
	}

	return r
}
