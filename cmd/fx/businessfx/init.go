package businessfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideBusinessRepo, provideBusinessService)

func provideBusinessRepo(db *gorm.DB) repositories.BusinessRepository {
	return repositories.NewBusinessRepository(db)
}

func provideBusinessService(businessRepo repositories.BusinessRepository, logger *zap.Logger) services.BusinessServiceInterface {
	return services.NewBusinessService(businessRepo, logger)
}
