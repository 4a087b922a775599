package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"learnlive/internal/config"
	"learnlive/internal/infra"
	"learnlive/internal/repositories"
	"learnlive/internal/services"
)

// reconcile enrolls every student whose successful payment did not result in
// an enrollment, then exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load configuration", zap.Error(err))
	}

	logger, err := infra.NewLogger(cfg)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	defer infra.ClosePostgresql(db, logger)

	if err := infra.RunMigrations(db, logger); err != nil {
		logger.Error("apply migrations", zap.Error(err))
		os.Exit(1)
	}

	paymentService := services.NewPaymentService(
		repositories.NewPaymentRepository(db),
		repositories.NewCourseRepository(db),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repaired, err := paymentService.ReconcileEnrollments(ctx)
	if err != nil {
		logger.Error("reconciliation failed", zap.Int("repaired", repaired), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("reconciliation finished", zap.Int("repaired", repaired))
}
