package tagfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideTagRepo, provideTagService)

func provideTagRepo(db *gorm.DB) repositories.TagRepository {
	return repositories.NewTagRepository(db)
}

func provideTagService(tagRepo repositories.TagRepository, logger *zap.Logger) services.TagServiceInterface {
	return services.NewTagService(tagRepo, logger)
}
