package services

import (
	"context"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

type TagServiceInterface interface {
	CreateTag(ctx context.Context, request request_models.TagCreateRequest) (*db_models.Tag, error)
	GetTag(ctx context.Context, id string) (*db_models.Tag, error)
	GetAllTags(ctx context.Context) ([]db_models.Tag, error)
	UpdateTag(ctx context.Context, id string, request request_models.TagUpdateRequest) (*db_models.Tag, error)
	DeleteTag(ctx context.Context, id string) (*db_models.Tag, error)
}

type TagService struct {
	tagRepo repositories.TagRepository
	logger  *zap.Logger
}

func NewTagService(tagRepo repositories.TagRepository, logger *zap.Logger) TagServiceInterface {
	return &TagService{tagRepo: tagRepo, logger: logger}
}

// CreateTag treats the name as the natural key: creating a tag that already
// exists returns the existing row.
func (t *TagService) CreateTag(ctx context.Context, request request_models.TagCreateRequest) (*db_models.Tag, error) {
	existing, err := t.tagRepo.FindByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	tag := &db_models.Tag{Name: request.Name}
	tag.Description = request.Description

	if err := t.tagRepo.Insert(ctx, tag); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("created tag", zap.String("tag_id", tag.ID), zap.String("name", tag.Name))
	return tag, nil
}

func (t *TagService) GetTag(ctx context.Context, id string) (*db_models.Tag, error) {
	tag, err := t.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tag == nil {
		return nil, utils.ErrTagNotFound
	}
	return tag, nil
}

func (t *TagService) GetAllTags(ctx context.Context) ([]db_models.Tag, error) {
	tags, err := t.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tags, nil
}

func (t *TagService) UpdateTag(ctx context.Context, id string, request request_models.TagUpdateRequest) (*db_models.Tag, error) {
	tag, err := t.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		tag.Name = *request.Name
	}
	if request.Description != nil {
		tag.Description = *request.Description
	}

	if err := t.tagRepo.Save(ctx, tag); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("updated tag", zap.String("tag_id", tag.ID))
	return tag, nil
}

func (t *TagService) DeleteTag(ctx context.Context, id string) (*db_models.Tag, error) {
	tag, err := t.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.tagRepo.Delete(ctx, tag); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("deleted tag", zap.String("tag_id", tag.ID))
	return tag, nil
}
