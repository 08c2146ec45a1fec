package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barrio/internal/models/request_models"
	"barrio/pkg/utils"
)

func TestCreateTag(t *testing.T) {
	service := NewTagService(newFakeTagRepo(), zap.NewNop())

	first, err := service.CreateTag(context.Background(), request_models.TagCreateRequest{Name: "jazz"})
	require.NoError(t, err)

	t.Run("name is the natural key", func(t *testing.T) {
		second, err := service.CreateTag(context.Background(), request_models.TagCreateRequest{Name: "jazz"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		tags, err := service.GetAllTags(context.Background())
		require.NoError(t, err)
		assert.Len(t, tags, 1)
	})

	t.Run("distinct names create distinct tags", func(t *testing.T) {
		other, err := service.CreateTag(context.Background(), request_models.TagCreateRequest{Name: "salsa"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
	})
}

func TestTagLifecycle(t *testing.T) {
	service := NewTagService(newFakeTagRepo(), zap.NewNop())

	tag, err := service.CreateTag(context.Background(), request_models.TagCreateRequest{Name: "rock"})
	require.NoError(t, err)

	name := "indie rock"
	updated, err := service.UpdateTag(context.Background(), tag.ID, request_models.TagUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "indie rock", updated.Name)

	_, err = service.DeleteTag(context.Background(), tag.ID)
	require.NoError(t, err)

	_, err = service.GetTag(context.Background(), tag.ID)
	assert.ErrorIs(t, err, utils.ErrTagNotFound)
}
