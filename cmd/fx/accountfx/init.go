package accountfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideResetTokenRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideResetTokenRepo(db *gorm.DB) repositories.ResetTokenRepository {
	return repositories.NewResetTokenRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokenRepo repositories.ResetTokenRepository,
	mailService services.IMailService,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokenRepo, mailService, logger)
}
