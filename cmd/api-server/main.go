package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"babylon/internal/archive"
	"babylon/internal/assets"
	"babylon/internal/auth"
	"babylon/internal/creators"
	"babylon/internal/search"
	"babylon/internal/works"
	"babylon/pkg/database"
	"babylon/pkg/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := utils.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("load config failed")
	}

	dbCfg := database.DefaultConfig()
	if cfg.DBPath != "" {
		dbCfg.Path = cfg.DBPath
	}
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.WithError(err).Fatal("db migrate failed")
	}

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "archive": cfg.ArchiveRoot})
	})

	// Archive index (public, read-only; every request re-scans storage)
	scanner := archive.NewScanner(cfg.ArchiveRoot, logger)
	normalizer := works.NewNormalizer(scanner, logger)

	aggregator := creators.NewAggregator(
		scanner,
		cfg.Completeness.DefaultTarget,
		cfg.Completeness.Targets,
	)

	creatorsGroup := router.Group("/creators")
	creators.NewHandler(aggregator).RegisterRoutes(creatorsGroup)
	works.NewHandler(normalizer).RegisterRoutes(creatorsGroup)

	engine := search.NewEngine(scanner, normalizer, logger)
	search.NewHandler(engine).RegisterRoutes(router.Group("/search"))

	resolver, err := assets.NewResolver(cfg.ArchiveRoot)
	if err != nil {
		logger.WithError(err).Fatal("asset resolver setup failed")
	}
	assets.NewHandler(resolver).RegisterRoutes(router.Group("/asset"))

	// Admin login stub; issues tokens, enforces nothing beyond its own group
	tokenSvc := auth.TokenService{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.JWTIssuer,
		Duration: cfg.Auth.TokenTTL(),
	}
	authRepo := auth.NewRepo(db)
	auth.NewHandler(authRepo, tokenSvc).RegisterRoutes(router.Group("/auth"))

	httpSrv := &http.Server{
		Addr:    cfg.Bind,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Bind).Info("HTTP API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutdown signal received")
	case err := <-errCh:
		logger.WithError(err).Error("server error")
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http shutdown error")
	}
	logger.Info("server stopped")
}
