package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"learnlive/internal/config"
	"learnlive/internal/infra"
	"learnlive/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, utils.DefaultTokenTTL)
}
