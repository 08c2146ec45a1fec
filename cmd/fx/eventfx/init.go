package eventfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, logger *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(eventRepo, logger)
}
