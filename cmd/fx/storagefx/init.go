package storagefx

import (
	"go.uber.org/fx"

	"barrio/internal/infra"
)

var Module = fx.Provide(provideStorage)

func provideStorage(cfg *infra.Config) (infra.ObjectStorage, error) {
	return infra.NewObjectStorage(cfg.Storage)
}
