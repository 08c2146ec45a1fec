package services

import (
	"context"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, requester *db_models.Account, request request_models.ActivityCreateRequest) (*db_models.Activity, error)
	GetActivity(ctx context.Context, id string) (*db_models.Activity, error)
	GetActivities(ctx context.Context, filter repositories.ActivityFilter) ([]db_models.Activity, error)
	UpdateActivity(ctx context.Context, requester *db_models.Account, id string, request request_models.ActivityUpdateRequest) (*db_models.Activity, error)
	DeleteActivity(ctx context.Context, requester *db_models.Account, id string) (*db_models.Activity, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	eventRepo    repositories.EventRepository
	logger       *zap.Logger
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) ActivityServiceInterface {
	return &ActivityService{activityRepo: activityRepo, eventRepo: eventRepo, logger: logger}
}

// CreateActivity is upsert-by-name: the activity name is unique within the
// event, so a create that collides with an existing name returns the existing
// row instead of failing on the constraint.
func (a *ActivityService) CreateActivity(ctx context.Context, requester *db_models.Account, request request_models.ActivityCreateRequest) (*db_models.Activity, error) {
	event, err := a.ownedEvent(ctx, requester, request.EventID)
	if err != nil {
		return nil, err
	}

	existing, err := a.activityRepo.Find(ctx, repositories.ActivityFilter{EventID: event.ID, Name: request.Name})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	activity := &db_models.Activity{
		Name:      request.Name,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		EventID:   event.ID,
	}
	activity.Description = request.Description

	if err := a.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("created activity", zap.String("activity_id", activity.ID), zap.String("event_id", event.ID))
	return activity, nil
}

func (a *ActivityService) GetActivity(ctx context.Context, id string) (*db_models.Activity, error) {
	activity, err := a.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (a *ActivityService) GetActivities(ctx context.Context, filter repositories.ActivityFilter) ([]db_models.Activity, error) {
	activities, err := a.activityRepo.Find(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return activities, nil
}

func (a *ActivityService) UpdateActivity(ctx context.Context, requester *db_models.Account, id string, request request_models.ActivityUpdateRequest) (*db_models.Activity, error) {
	activity, err := a.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := a.ownedEvent(ctx, requester, activity.EventID); err != nil {
		return nil, err
	}

	if request.Name != nil {
		activity.Name = *request.Name
	}
	if request.StartDate != nil {
		activity.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		activity.EndDate = *request.EndDate
	}
	if request.Description != nil {
		activity.Description = *request.Description
	}

	if err := a.activityRepo.Save(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("updated activity", zap.String("activity_id", activity.ID))
	return activity, nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, requester *db_models.Account, id string) (*db_models.Activity, error) {
	activity, err := a.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := a.ownedEvent(ctx, requester, activity.EventID); err != nil {
		return nil, err
	}

	if err := a.activityRepo.Delete(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("deleted activity", zap.String("activity_id", activity.ID))
	return activity, nil
}

func (a *ActivityService) ownedEvent(ctx context.Context, requester *db_models.Account, eventID string) (*db_models.Event, error) {
	event, err := a.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if event.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}
	return event, nil
}
