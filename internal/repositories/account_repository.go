package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	FindAll(ctx context.Context) ([]db_models.Account, error)
	Save(ctx context.Context, account *db_models.Account) error
	Delete(ctx context.Context, account *db_models.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return a.findOne(ctx, "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.findOne(ctx, "email = ?", email)
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	return a.findOne(ctx, "username = ?", username)
}

func (a *accountRepository) findOne(ctx context.Context, query string, arg string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	if err := a.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit("Events", "Businesses", "Files", "ResetTokens").Save(account).Error
}

// Delete removes the account together with its owned events, businesses,
// files and reset tokens.
func (a *accountRepository) Delete(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Select("Events", "Businesses", "Files", "ResetTokens").Delete(account).Error
}
