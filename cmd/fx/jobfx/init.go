package jobfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"barrio/internal/infra"
	"barrio/internal/jobs"
	"barrio/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(jobs.NewRecurrenceJob),
	fx.Invoke(registerJobs),
)

func registerJobs(
	lc fx.Lifecycle,
	cfg *infra.Config,
	accountRepo repositories.AccountRepository,
	recurrence *jobs.RecurrenceJob,
	logger *zap.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := jobs.EnsureAdminAccount(ctx, cfg.Admin, accountRepo, logger); err != nil {
				return err
			}
			recurrence.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			recurrence.Stop()
			return nil
		},
	})
}
