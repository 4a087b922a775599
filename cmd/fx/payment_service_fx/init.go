package payment_service_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learnlive/internal/repositories"
	"learnlive/internal/services"
)

var Module = fx.Options(
	fx.Provide(providePaymentRepo, providePaymentService),
	fx.Invoke(registerReconcileHook),
)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.PaymentRepository, courseRepo repositories.CourseRepository, logger *zap.Logger) services.PaymentService {
	return services.NewPaymentService(paymentRepo, courseRepo, logger)
}

// registerReconcileHook runs one enrollment sweep in the background after start.
func registerReconcileHook(lc fx.Lifecycle, paymentService services.PaymentService, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				repaired, err := paymentService.ReconcileEnrollments(ctx)
				if err != nil {
					logger.Error("enrollment reconciliation failed", zap.Error(err))
					return
				}
				logger.Info("enrollment reconciliation finished", zap.Int("repaired", repaired))
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
