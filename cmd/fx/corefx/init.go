package corefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"barrio/internal/infra"
	"barrio/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideTokenManager)

func provideConfig() *infra.Config {
	return infra.LoadConfig()
}

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func provideTokenManager(cfg *infra.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
}
