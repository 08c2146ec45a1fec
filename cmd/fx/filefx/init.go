package filefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/infra"
	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideFileRepo, provideFileService)

func provideFileRepo(db *gorm.DB) repositories.FileRepository {
	return repositories.NewFileRepository(db)
}

func provideFileService(
	fileRepo repositories.FileRepository,
	eventRepo repositories.EventRepository,
	businessRepo repositories.BusinessRepository,
	storage infra.ObjectStorage,
	logger *zap.Logger,
) services.FileServiceInterface {
	return services.NewFileService(fileRepo, eventRepo, businessRepo, storage, logger)
}
