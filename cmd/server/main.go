package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ledgerapp "github.com/resale/backend/internal/application/ledger"
	partnerapp "github.com/resale/backend/internal/application/partner"
	showapp "github.com/resale/backend/internal/application/show"
	"github.com/resale/backend/internal/infrastructure/auth"
	"github.com/resale/backend/internal/infrastructure/config"
	"github.com/resale/backend/internal/infrastructure/logger"
	"github.com/resale/backend/internal/infrastructure/persistence"
	"github.com/resale/backend/internal/interfaces/http/handler"
	"github.com/resale/backend/internal/interfaces/http/middleware"
	"github.com/resale/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Resale Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	showRepo := persistence.NewGormShowRepository(db.DB)
	wholesalerRepo := persistence.NewGormWholesalerRepository(db.DB)
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)
	obligationRepo := persistence.NewGormObligationRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	// Application services
	showService := showapp.NewService(showRepo)
	wholesalerService := partnerapp.NewService(wholesalerRepo)
	financialsService := ledgerapp.NewFinancialsService(showRepo, snapshotRepo)
	settlementService := ledgerapp.NewSettlementService(showRepo, wholesalerRepo, obligationRepo)
	paymentService := ledgerapp.NewPaymentService(wholesalerRepo, showRepo, paymentRepo)
	ledgerService := ledgerapp.NewLedgerService(wholesalerRepo, obligationRepo, paymentRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	// Liveness probe outside the authenticated API group
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	jwtService := auth.NewJWTService(cfg.Auth)
	authMiddleware := middleware.Authenticate(middleware.DefaultAuthConfig(cfg.Auth, jwtService))

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(authMiddleware),
	)
	r.Register(handler.NewShowHandler(showService))
	r.Register(handler.NewWholesalerHandler(wholesalerService))
	r.Register(handler.NewFinancialsHandler(financialsService))
	r.Register(handler.NewSettlementHandler(settlementService))
	r.Register(handler.NewPaymentHandler(paymentService))
	r.Register(handler.NewLedgerHandler(ledgerService))
	r.Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
