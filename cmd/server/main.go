package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taxtract/internal/analyzer/docintel"
	"taxtract/internal/config"
	"taxtract/internal/handler"
	"taxtract/internal/port"
	"taxtract/internal/profile"
	"taxtract/internal/router"
	"taxtract/internal/service"
	s3storage "taxtract/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	registry := profile.NewRegistryWithTolerance(profile.Tolerance{
		Relative: cfg.Extract.RelativeTolerance,
		Absolute: cfg.Extract.AbsoluteTolerance,
	})

	analyzer := docintel.NewClient(&cfg.Analyzer)

	// Object storage is optional; requests with stored-document references
	// fail cleanly when it is absent.
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	extractSvc := service.NewExtractionService(analyzer, registry, &cfg.Analyzer, logger)

	extractH := handler.NewExtractHandler(extractSvc, storage, cfg.S3.Bucket, logger)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, logger, extractH, healthH)

	logger.Info("server starting", zap.String("addr", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
