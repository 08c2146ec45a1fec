package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type FileFilter struct {
	AccountID  string
	EventID    string
	BusinessID string
	Category   string
}

type FileRepository interface {
	Insert(ctx context.Context, file *db_models.File) error
	FindByID(ctx context.Context, id string) (*db_models.File, error)
	Find(ctx context.Context, filter FileFilter) ([]db_models.File, error)
	Save(ctx context.Context, file *db_models.File) error
	Delete(ctx context.Context, file *db_models.File) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (f *fileRepository) Insert(ctx context.Context, file *db_models.File) error {
	return f.db.WithContext(ctx).Create(file).Error
}

func (f *fileRepository) FindByID(ctx context.Context, id string) (*db_models.File, error) {
	var file db_models.File
	err := f.db.WithContext(ctx).First(&file, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (f *fileRepository) Find(ctx context.Context, filter FileFilter) ([]db_models.File, error) {
	query := f.db.WithContext(ctx)
	if filter.AccountID != "" {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.BusinessID != "" {
		query = query.Where("business_id = ?", filter.BusinessID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var files []db_models.File
	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (f *fileRepository) Save(ctx context.Context, file *db_models.File) error {
	return f.db.WithContext(ctx).Save(file).Error
}

func (f *fileRepository) Delete(ctx context.Context, file *db_models.File) error {
	return f.db.WithContext(ctx).Delete(file).Error
}
