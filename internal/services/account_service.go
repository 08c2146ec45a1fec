package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

// resetTokenTTL bounds how long an unused reset token stays valid.
const resetTokenTTL = time.Hour

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.AccountCreateRequest) (*db_models.Account, error)
	Login(ctx context.Context, username string, password string) (*db_models.Account, error)
	GetAccount(ctx context.Context, id string) (*db_models.Account, error)
	GetAllAccounts(ctx context.Context) ([]db_models.Account, error)
	UpdateAccount(ctx context.Context, id string, request request_models.AccountUpdateRequest) (*db_models.Account, error)
	DeleteAccount(ctx context.Context, id string) (*db_models.Account, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
	IsResetTokenUsed(ctx context.Context, token string) (bool, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.ResetTokenRepository
	mailService IMailService
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokenRepo repositories.ResetTokenRepository,
	mailService IMailService,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		mailService: mailService,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.AccountCreateRequest) (*db_models.Account, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	accountType := db_models.AccountTypeUser
	if request.Type == string(db_models.AccountTypeAdmin) {
		accountType = db_models.AccountTypeAdmin
	}

	account := &db_models.Account{
		Username:     request.Username,
		Email:        request.Email,
		Type:         accountType,
		PasswordHash: hashedPassword,
		Phone:        request.Phone,
	}
	account.Description = request.Description

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("created account", zap.String("account_id", account.ID))
	return account, nil
}

// Login checks the credentials and returns the account. Unknown username and
// wrong password collapse into the same error.
func (a *AccountService) Login(ctx context.Context, username string, password string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return account, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]db_models.Account, error) {
	accounts, err := a.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return accounts, nil
}

func (a *AccountService) UpdateAccount(ctx context.Context, id string, request request_models.AccountUpdateRequest) (*db_models.Account, error) {
	account, err := a.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Username != nil {
		account.Username = *request.Username
	}
	if request.Email != nil {
		account.Email = *request.Email
	}
	if request.Password != nil {
		hashed, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hashed
	}
	if request.Phone != nil {
		account.Phone = *request.Phone
	}
	if request.Description != nil {
		account.Description = *request.Description
	}

	if err := a.accountRepo.Save(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("updated account", zap.String("account_id", account.ID))
	return account, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.accountRepo.Delete(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("deleted account", zap.String("account_id", account.ID))
	return account, nil
}

// ForgotPassword issues a fresh reset token, retires the account's prior
// unused tokens and emails the new one. The email leaves in a goroutine: the
// response does not wait for delivery, failures only get logged.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}

	if err := a.tokenRepo.MarkUsedForAccount(ctx, account.ID); err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.tokenRepo.Insert(ctx, &db_models.ResetToken{ID: token, AccountID: account.ID}); err != nil {
		return utils.ErrDatabaseError
	}

	go func(to, token string) {
		if err := a.mailService.SendResetPasswordEmail(to, token); err != nil {
			a.logger.Error("failed to send reset email", zap.String("email", to), zap.Error(err))
		}
	}(account.Email, token)

	a.logger.Info("issued reset token", zap.String("account_id", account.ID))
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	resetToken, err := a.tokenRepo.FindByID(ctx, token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if resetToken == nil || resetToken.Used || time.Since(resetToken.CreationDate) > resetTokenTTL {
		return utils.ErrResetTokenInvalid
	}

	account, err := a.accountRepo.FindByID(ctx, resetToken.AccountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	account.PasswordHash = hashed

	resetToken.Used = true
	if err := a.tokenRepo.Save(ctx, resetToken); err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.Save(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("reset password", zap.String("account_id", account.ID))
	return nil
}

func (a *AccountService) IsResetTokenUsed(ctx context.Context, token string) (bool, error) {
	resetToken, err := a.tokenRepo.FindByID(ctx, token)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if resetToken == nil {
		return false, utils.ErrResetTokenInvalid
	}
	return resetToken.Used, nil
}
