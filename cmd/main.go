package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gestao/config"
	_ "gestao/docs"
	"gestao/internal/pkg/cache"
	"gestao/internal/pkg/database"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/token"
	"gestao/internal/scheduler"

	"gestao/internal/api/dashboard"
	"gestao/internal/api/movement"
	"gestao/internal/api/product"
	"gestao/internal/api/router"
	"gestao/internal/api/transaction"
	"gestao/internal/api/user"
	"gestao/internal/repository/movementrepo"
	"gestao/internal/repository/productrepo"
	"gestao/internal/repository/transactionrepo"
	"gestao/internal/repository/userrepo"
	"gestao/internal/service/cashservice"
	"gestao/internal/service/dashboardservice"
	"gestao/internal/service/movementservice"
	"gestao/internal/service/productservice"
	"gestao/internal/service/userservice"
)

// @title Gestão API
// @version 1.0
// @description API de estoque e fluxo de caixa para pequenos negócios.
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	stdlog.Println("Inicializando serviço Gestão...")

	// O .env é opcional: em containers as variáveis vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Usando apenas variáveis do ambiente.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Falha ao carregar configurações: %v", err)
	}

	var log logger.Logger
	if cfg.Environment == "development" {
		log = logger.NewConsoleLogger(cfg.LogLevel)
	} else {
		log = logger.NewLogger(cfg.LogLevel)
	}
	log.Info("Configurações carregadas.", map[string]interface{}{
		"environment": cfg.Environment,
		"timezone":    cfg.Location.String(),
	})

	// 1. Infraestrutura

	// Banco conectado sob demanda: sem DATABASE_URL as rotas de dados respondem 503.
	db := database.NewProvider(cfg.DatabaseURL)
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Falha ao fechar conexão com o banco.", err)
		}
	}()
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL não definida. Banco de dados indisponível.", nil)
	}

	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
	if err != nil {
		log.Warn("Redis indisponível. Cache e rate limit operando em modo degradado.", map[string]interface{}{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 2. Repository -> Service -> Handler
	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, log)
	movementRepo := movementrepo.NewMovementRepository(db, cacheClient, cfg.DBTimeout, log)
	transactionRepo := transactionrepo.NewTransactionRepository(db, cfg.DBTimeout, log)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	productSvc := productservice.NewService(productRepo, cfg.LowStockThreshold, log)
	movementSvc := movementservice.NewService(movementRepo, log)
	cashSvc := cashservice.NewService(transactionRepo, cfg.Location, log)
	dashboardSvc := dashboardservice.NewService(productSvc, cashSvc, log)
	userSvc := userservice.NewService(userRepo, tokenSvc, log)
	log.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Product:     product.NewHandler(productSvc, log),
		Movement:    movement.NewHandler(movementSvc, cfg.Location, log),
		Transaction: transaction.NewHandler(cashSvc, cfg.Location, log),
		Dashboard:   dashboard.NewHandler(dashboardSvc, log),
		User:        user.NewHandler(userSvc, log),
	}

	r := router.NewRouter(handlers, router.Options{
		TokenService:       tokenSvc,
		Cache:              cacheClient,
		RateLimitMax:       cfg.RateLimitMaxRequests,
		RateLimitPeriod:    cfg.RateLimitPeriod,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:             log,
	})

	// 3. Tarefas agendadas
	sched := scheduler.NewScheduler(cfg.LowStockCron, cfg.Location, productSvc, log)
	if err := sched.Start(); err != nil {
		log.Fatal("Expressão cron inválida para o alerta de estoque baixo.", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Gestão ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	sched.Stop()

	log.Info("Servidor encerrado com sucesso.", nil)
}
