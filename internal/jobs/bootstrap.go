package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"barrio/internal/infra"
	"barrio/internal/models/db_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

// EnsureAdminAccount creates the configured admin account at startup when no
// account with that email exists yet. An empty admin config skips the step.
func EnsureAdminAccount(ctx context.Context, cfg infra.AdminConfig, accountRepo repositories.AccountRepository, logger *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Info("admin bootstrap skipped, no admin configured")
		return nil
	}

	existing, err := accountRepo.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &db_models.Account{
		Username:     cfg.Username,
		Email:        cfg.Email,
		Type:         db_models.AccountTypeAdmin,
		PasswordHash: hashed,
		Phone:        cfg.Phone,
	}
	if err := accountRepo.Insert(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("created bootstrap admin account", zap.String("account_id", admin.ID))
	return nil
}
