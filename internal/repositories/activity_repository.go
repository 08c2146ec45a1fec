package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type ActivityFilter struct {
	EventID string
	Name    string
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	FindByID(ctx context.Context, id string) (*db_models.Activity, error)
	Find(ctx context.Context, filter ActivityFilter) ([]db_models.Activity, error)
	Save(ctx context.Context, activity *db_models.Activity) error
	Delete(ctx context.Context, activity *db_models.Activity) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (a *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return a.db.WithContext(ctx).Create(activity).Error
}

func (a *activityRepository) FindByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := a.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (a *activityRepository) Find(ctx context.Context, filter ActivityFilter) ([]db_models.Activity, error) {
	query := a.db.WithContext(ctx)
	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var activities []db_models.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (a *activityRepository) Save(ctx context.Context, activity *db_models.Activity) error {
	return a.db.WithContext(ctx).Save(activity).Error
}

func (a *activityRepository) Delete(ctx context.Context, activity *db_models.Activity) error {
	return a.db.WithContext(ctx).Delete(activity).Error
}
