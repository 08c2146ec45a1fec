package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type TagRepository interface {
	Insert(ctx context.Context, tag *db_models.Tag) error
	FindByID(ctx context.Context, id string) (*db_models.Tag, error)
	FindByName(ctx context.Context, name string) (*db_models.Tag, error)
	FindAll(ctx context.Context) ([]db_models.Tag, error)
	Save(ctx context.Context, tag *db_models.Tag) error
	Delete(ctx context.Context, tag *db_models.Tag) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (t *tagRepository) Insert(ctx context.Context, tag *db_models.Tag) error {
	return t.db.WithContext(ctx).Create(tag).Error
}

func (t *tagRepository) FindByID(ctx context.Context, id string) (*db_models.Tag, error) {
	return t.findOne(ctx, "id = ?", id)
}

func (t *tagRepository) FindByName(ctx context.Context, name string) (*db_models.Tag, error) {
	return t.findOne(ctx, "name = ?", name)
}

func (t *tagRepository) findOne(ctx context.Context, query string, arg string) (*db_models.Tag, error) {
	var tag db_models.Tag
	err := t.db.WithContext(ctx).First(&tag, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (t *tagRepository) FindAll(ctx context.Context) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	if err := t.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (t *tagRepository) Save(ctx context.Context, tag *db_models.Tag) error {
	return t.db.WithContext(ctx).Save(tag).Error
}

func (t *tagRepository) Delete(ctx context.Context, tag *db_models.Tag) error {
	// clear join rows on both sides before the row itself goes away
	return t.db.WithContext(ctx).Select("Events", "Businesses").Delete(tag).Error
}
