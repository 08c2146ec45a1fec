package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type ResetTokenRepository interface {
	Insert(ctx context.Context, token *db_models.ResetToken) error
	FindByID(ctx context.Context, token string) (*db_models.ResetToken, error)
	// MarkUsedForAccount retires every unused token of the account, keeping
	// the single-active-token invariant when a new one is issued.
	MarkUsedForAccount(ctx context.Context, accountID string) error
	Save(ctx context.Context, token *db_models.ResetToken) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Insert(ctx context.Context, token *db_models.ResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepository) FindByID(ctx context.Context, token string) (*db_models.ResetToken, error) {
	var resetToken db_models.ResetToken
	err := r.db.WithContext(ctx).First(&resetToken, "id = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resetToken, nil
}

func (r *resetTokenRepository) MarkUsedForAccount(ctx context.Context, accountID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ResetToken{}).
		Where("account_id = ? AND used = ?", accountID, false).
		Update("used", true).Error
}

func (r *resetTokenRepository) Save(ctx context.Context, token *db_models.ResetToken) error {
	return r.db.WithContext(ctx).Save(token).Error
}
