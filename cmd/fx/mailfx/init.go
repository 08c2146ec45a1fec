package mailfx

import (
	"go.uber.org/fx"

	"barrio/internal/infra"
	"barrio/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *infra.Config) services.IMailService {
	return services.NewSMTPMailService(cfg.SMTP)
}
