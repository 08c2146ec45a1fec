package services

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barrio/internal/infra"
	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/models/response_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

// presignedURLExpiry bounds how long an upload or download link stays usable.
const presignedURLExpiry = 15 * time.Minute

type FileServiceInterface interface {
	CreateFile(ctx context.Context, accountID string, request request_models.FileCreateRequest) (*db_models.File, error)
	GetFile(ctx context.Context, id string) (*db_models.File, error)
	GetFiles(ctx context.Context, filter repositories.FileFilter) ([]db_models.File, error)
	UpdateFile(ctx context.Context, requester *db_models.Account, id string, request request_models.FileUpdateRequest) (*db_models.File, error)
	DeleteFile(ctx context.Context, requester *db_models.Account, id string) (*db_models.File, error)
	PresignedUploadURL(ctx context.Context, accountID string, filename string) (*response_models.PresignedURLResponse, error)
	PresignedDownloadURL(ctx context.Context, id string) (*response_models.PresignedURLResponse, error)
}

type FileService struct {
	fileRepo     repositories.FileRepository
	eventRepo    repositories.EventRepository
	businessRepo repositories.BusinessRepository
	storage      infra.ObjectStorage
	logger       *zap.Logger
}

func NewFileService(
	fileRepo repositories.FileRepository,
	eventRepo repositories.EventRepository,
	businessRepo repositories.BusinessRepository,
	storage infra.ObjectStorage,
	logger *zap.Logger,
) FileServiceInterface {
	return &FileService{
		fileRepo:     fileRepo,
		eventRepo:    eventRepo,
		businessRepo: businessRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (f *FileService) CreateFile(ctx context.Context, accountID string, request request_models.FileCreateRequest) (*db_models.File, error) {
	file := &db_models.File{
		Filename:    request.Filename,
		ContentType: request.ContentType,
		Category:    db_models.FileCategory(request.Category),
		Path:        request.Path,
		Hash:        request.Hash,
		AccountID:   &accountID,
	}
	file.Description = request.Description

	if err := f.fileRepo.Insert(ctx, file); err != nil {
		return nil, utils.ErrDatabaseError
	}

	f.logger.Info("created file", zap.String("file_id", file.ID), zap.String("account_id", accountID))
	return file, nil
}

func (f *FileService) GetFile(ctx context.Context, id string) (*db_models.File, error) {
	file, err := f.fileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if file == nil {
		return nil, utils.ErrFileNotFound
	}
	return file, nil
}

func (f *FileService) GetFiles(ctx context.Context, filter repositories.FileFilter) ([]db_models.File, error) {
	files, err := f.fileRepo.Find(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return files, nil
}

func (f *FileService) UpdateFile(ctx context.Context, requester *db_models.Account, id string, request request_models.FileUpdateRequest) (*db_models.File, error) {
	file, err := f.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := f.checkOwnership(ctx, requester, file); err != nil {
		return nil, err
	}

	if request.Filename != nil {
		file.Filename = *request.Filename
	}
	if request.ContentType != nil {
		file.ContentType = *request.ContentType
	}
	if request.Category != nil {
		file.Category = db_models.FileCategory(*request.Category)
	}
	if request.Path != nil {
		file.Path = *request.Path
	}
	if request.Hash != nil {
		file.Hash = *request.Hash
	}
	if request.Description != nil {
		file.Description = *request.Description
	}

	if err := f.fileRepo.Save(ctx, file); err != nil {
		return nil, utils.ErrDatabaseError
	}

	f.logger.Info("updated file", zap.String("file_id", file.ID))
	return file, nil
}

func (f *FileService) DeleteFile(ctx context.Context, requester *db_models.Account, id string) (*db_models.File, error) {
	file, err := f.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := f.checkOwnership(ctx, requester, file); err != nil {
		return nil, err
	}

	if err := f.fileRepo.Delete(ctx, file); err != nil {
		return nil, utils.ErrDatabaseError
	}

	f.logger.Info("deleted file", zap.String("file_id", file.ID))
	return file, nil
}

// PresignedUploadURL reserves a collision-free object key under the account's
// prefix and signs a PUT for it. The client uploads the bytes directly and
// then registers the metadata with CreateFile, quoting the key as the path.
func (f *FileService) PresignedUploadURL(ctx context.Context, accountID string, filename string) (*response_models.PresignedURLResponse, error) {
	object := fmt.Sprintf("%s/%s-%s", accountID, uuid.NewString(), path.Base(filename))

	signed, err := f.storage.PresignedUploadURL(ctx, object, presignedURLExpiry)
	if err != nil {
		f.logger.Error("failed to presign upload", zap.String("object", object), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PresignedURLResponse{
		URL:       signed,
		Method:    http.MethodPut,
		ExpiresAt: time.Now().Add(presignedURLExpiry),
	}, nil
}

func (f *FileService) PresignedDownloadURL(ctx context.Context, id string) (*response_models.PresignedURLResponse, error) {
	file, err := f.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}

	signed, err := f.storage.PresignedDownloadURL(ctx, file.Path, presignedURLExpiry)
	if err != nil {
		f.logger.Error("failed to presign download", zap.String("file_id", file.ID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PresignedURLResponse{
		URL:       signed,
		Method:    http.MethodGet,
		ExpiresAt: time.Now().Add(presignedURLExpiry),
	}, nil
}

// checkOwnership resolves the file's owner through whichever parent it is
// attached to. Admins pass unconditionally.
func (f *FileService) checkOwnership(ctx context.Context, requester *db_models.Account, file *db_models.File) error {
	if requester.IsAdmin() {
		return nil
	}

	switch {
	case file.AccountID != nil:
		if *file.AccountID == requester.ID {
			return nil
		}
	case file.EventID != nil:
		event, err := f.eventRepo.FindByID(ctx, *file.EventID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if event != nil && event.AccountID == requester.ID {
			return nil
		}
	case file.BusinessID != nil:
		business, err := f.businessRepo.FindByID(ctx, *file.BusinessID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if business != nil && business.AccountID == requester.ID {
			return nil
		}
	}

	return utils.ErrNotResourceOwner
}
