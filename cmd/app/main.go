package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"learnlive/cmd/fx/account_fx"
	"learnlive/cmd/fx/config_fx"
	"learnlive/cmd/fx/controllers_fx"
	"learnlive/cmd/fx/course_fx"
	"learnlive/cmd/fx/db_fx"
	"learnlive/cmd/fx/material_fx"
	"learnlive/cmd/fx/payment_service_fx"
	"learnlive/cmd/fx/session_fx"
	"learnlive/internal/api/controllers"
	"learnlive/internal/api/routes"
	"learnlive/internal/config"
	"learnlive/internal/infra"
	"learnlive/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		course_fx.Module,
		session_fx.Module,
		material_fx.Module,
		payment_service_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(ProvideMetrics),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideMetrics() (*prometheus.Registry, *middleware.HTTPMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry, middleware.NewHTTPMetrics(registry)
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	metrics *middleware.HTTPMetrics,
	resolver middleware.PrincipalResolver,
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	sessionController *controllers.SessionController,
	materialController *controllers.MaterialController,
	paymentController *controllers.PaymentController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return routes.NewRouter(routes.Options{
		CORSOrigins:    cfg.CORSOrigins,
		UploadDir:      cfg.UploadDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
		Metrics:        metrics,
		Gatherer:       registry,
	}, resolver, routes.Handlers{
		Accounts:  accountController,
		Courses:   courseController,
		Sessions:  sessionController,
		Materials: materialController,
		Payments:  paymentController,
	})
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port, err := resolvePort(cfg)
			if err != nil {
				return err
			}
			listener, err := net.Listen("tcp", ":"+strconv.Itoa(port))
			if err != nil {
				return fmt.Errorf("listen on port %d: %w", port, err)
			}

			go func() {
				logger.Info("starting HTTP server", zap.Int("port", port))
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func resolvePort(cfg *config.Config) (int, error) {
	if cfg.Port != "" {
		port, err := strconv.Atoi(cfg.Port)
		if err != nil {
			return 0, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
		}
		return port, nil
	}
	return infra.FindAvailablePort(cfg.PortSearchStart)
}
