package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/config"
	"github.com/personalweb/portfolio-backend/internal/backup"
	"github.com/personalweb/portfolio-backend/internal/bootstrap"
	"github.com/personalweb/portfolio-backend/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start portfolio", zap.Error(err))
	}

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{ServiceName: "portfolio-api", App: app})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	go func() {
		if err := app.Relay(ctx); err != nil {
			logger.Warn("event relay stopped", zap.Error(err))
		}
	}()

	scheduler, err := startBackups(ctx, cfg, app, logger)
	if err != nil {
		logger.Fatal("failed to start backups", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("source", cfg.Store.Source),
			zap.String("store", app.StoreName()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.Error("portfolio shutdown", zap.Error(err))
		os.Exit(1)
	}
}

// startBackups returns nil when BACKUP_CRON is empty.
func startBackups(ctx context.Context, cfg *config.Config, app *bootstrap.App, logger *zap.Logger) (*backup.Scheduler, error) {
	if cfg.Backup.Cron == "" {
		return nil, nil
	}

	var sink backup.Sink = backup.FileSink{Dir: cfg.Backup.Dir}
	if cfg.Backup.S3Bucket != "" {
		s3Sink, err := backup.OpenS3Sink(ctx, cfg.Backup.S3Bucket, cfg.Backup.S3Region, cfg.Backup.S3Prefix)
		if err != nil {
			return nil, err
		}
		sink = s3Sink
	}

	s := backup.NewScheduler(cfg.Backup.Cron, backup.FacadeSnapshot(app.Facade), sink, logger.Named("backup"))
	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}
