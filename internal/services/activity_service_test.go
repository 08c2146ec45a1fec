package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barrio/internal/models/request_models"
	"barrio/pkg/utils"
)

func newActivityServiceForTest(t *testing.T) (ActivityServiceInterface, string) {
	t.Helper()
	eventRepo := newFakeEventRepo()
	eventService := NewEventService(eventRepo, zap.NewNop())
	event, err := eventService.CreateEvent(context.Background(), testOwner.ID, eventCreateRequest())
	require.NoError(t, err)

	service := NewActivityService(newFakeActivityRepo(), eventRepo, zap.NewNop())
	return service, event.ID
}

func TestCreateActivityStandalone(t *testing.T) {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	t.Run("creates under an owned event", func(t *testing.T) {
		service, eventID := newActivityServiceForTest(t)

		activity, err := service.CreateActivity(context.Background(), testOwner, request_models.ActivityCreateRequest{
			Name:      "concert",
			StartDate: start,
			EndDate:   start.Add(time.Hour),
			EventID:   eventID,
		})
		require.NoError(t, err)
		assert.Equal(t, eventID, activity.EventID)
	})

	t.Run("name collision returns the existing activity", func(t *testing.T) {
		service, eventID := newActivityServiceForTest(t)

		first, err := service.CreateActivity(context.Background(), testOwner, request_models.ActivityCreateRequest{
			Name:      "concert",
			StartDate: start,
			EndDate:   start.Add(time.Hour),
			EventID:   eventID,
		})
		require.NoError(t, err)

		second, err := service.CreateActivity(context.Background(), testOwner, request_models.ActivityCreateRequest{
			Name:      "concert",
			StartDate: start.Add(2 * time.Hour),
			EndDate:   start.Add(3 * time.Hour),
			EventID:   eventID,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("stranger cannot add to someone else's event", func(t *testing.T) {
		service, eventID := newActivityServiceForTest(t)

		_, err := service.CreateActivity(context.Background(), testStranger, request_models.ActivityCreateRequest{
			Name:      "crash",
			StartDate: start,
			EndDate:   start.Add(time.Hour),
			EventID:   eventID,
		})
		assert.ErrorIs(t, err, utils.ErrNotResourceOwner)
	})

	t.Run("unknown event", func(t *testing.T) {
		service, _ := newActivityServiceForTest(t)

		_, err := service.CreateActivity(context.Background(), testOwner, request_models.ActivityCreateRequest{
			Name:      "nowhere",
			StartDate: start,
			EndDate:   start.Add(time.Hour),
			EventID:   "event-missing",
		})
		assert.ErrorIs(t, err, utils.ErrEventNotFound)
	})
}

func TestUpdateActivityStandalone(t *testing.T) {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	service, eventID := newActivityServiceForTest(t)

	activity, err := service.CreateActivity(context.Background(), testOwner, request_models.ActivityCreateRequest{
		Name:      "workshop",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		EventID:   eventID,
	})
	require.NoError(t, err)

	name := "masterclass"
	updated, err := service.UpdateActivity(context.Background(), testOwner, activity.ID, request_models.ActivityUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "masterclass", updated.Name)
	assert.Equal(t, start, updated.StartDate)

	_, err = service.UpdateActivity(context.Background(), testStranger, activity.ID, request_models.ActivityUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)
}
