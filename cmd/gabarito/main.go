package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mind-engage/gabarito/internal/answerkey"
	api "github.com/mind-engage/gabarito/internal/api/http"
	"github.com/mind-engage/gabarito/internal/config"
	"github.com/mind-engage/gabarito/internal/db"
	"github.com/mind-engage/gabarito/internal/logging"
	"github.com/mind-engage/gabarito/internal/metrics"
	"github.com/mind-engage/gabarito/internal/results"
	"github.com/mind-engage/gabarito/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		cancel()
		logger.Fatal("db open failed", zap.Error(err))
	}
	store := results.NewSQLStore(dbh, db.Driver(cfg.DBDriver))
	if err := store.Init(ctx); err != nil {
		cancel()
		logger.Fatal("db init failed", zap.Error(err))
	}
	cancel()
	defer dbh.Close()

	assets, err := storage.NewFSStore(cfg.StaticDir)
	if err != nil {
		logger.Fatal("static dir", zap.Error(err))
	}
	pages, err := api.LoadPages()
	if err != nil {
		logger.Fatal("templates", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.EnableMetrics {
		m = metrics.New()
	}

	r := api.NewRouter(api.Deps{
		Key:         answerkey.Official(),
		Store:       store,
		Assets:      assets,
		Pages:       pages,
		Log:         logger,
		Metrics:     m,
		StaticDir:   cfg.StaticDir,
		ExamFile:    cfg.ExamFile,
		CORSOrigins: cfg.CORSOrigins,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("db", cfg.DBDriver),
			zap.String("static", cfg.StaticDir),
			zap.Bool("exam_present", assets.Exists(cfg.ExamFile)))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-sigCtx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
