package activityfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, eventRepo, logger)
}
