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

func businessCreateRequest() request_models.BusinessCreateRequest {
	return request_models.BusinessCreateRequest{
		Name:         "Cafe del Mar",
		Category:     "cafe",
		Address:      "3 Plaza Mayor",
		Country:      "Spain",
		Municipality: "Madrid",
		City:         "Madrid",
		Postcode:     "28012",
		Region:       "Madrid",
		IsPublic:     true,
	}
}

func newBusinessServiceForTest() (BusinessServiceInterface, *fakeBusinessRepo) {
	repo := newFakeBusinessRepo()
	return NewBusinessService(repo, zap.NewNop()), repo
}

func TestCreateBusiness(t *testing.T) {
	service, _ := newBusinessServiceForTest()

	req := businessCreateRequest()
	req.SocialNetworks = []request_models.SocialNetworkPayload{
		{URL: "https://instagram.com/cafedelmar", Category: "instagram"},
	}

	business, err := service.CreateBusiness(context.Background(), testOwner.ID, req)
	require.NoError(t, err)

	assert.Equal(t, testOwner.ID, business.AccountID)
	require.Len(t, business.SocialNetworks, 1)
	assert.Equal(t, business.ID, business.SocialNetworks[0].BusinessID)
}

func TestUpdateBusinessChildren(t *testing.T) {
	t.Run("social networks follow desired state", func(t *testing.T) {
		service, repo := newBusinessServiceForTest()

		req := businessCreateRequest()
		req.SocialNetworks = []request_models.SocialNetworkPayload{
			{URL: "https://instagram.com/a", Category: "instagram"},
			{URL: "https://facebook.com/a", Category: "facebook"},
		}
		business, err := service.CreateBusiness(context.Background(), testOwner.ID, req)
		require.NoError(t, err)

		var keepID string
		for _, n := range business.SocialNetworks {
			if n.Category == "instagram" {
				keepID = n.ID
			}
		}
		require.NotEmpty(t, keepID)

		updated, err := service.UpdateBusiness(context.Background(), testOwner, business.ID, request_models.BusinessUpdateRequest{
			SocialNetworks: []request_models.SocialNetworkPayload{
				{ID: keepID},
				{URL: "https://cafedelmar.example", Category: "web"},
			},
		})
		require.NoError(t, err)

		assert.Len(t, updated.SocialNetworks, 2)
		require.NotNil(t, repo.lastChildren.SocialNetworks)
		assert.Equal(t, []string{keepID}, repo.lastChildren.SocialNetworks.Keep)
		assert.Len(t, repo.lastChildren.SocialNetworks.Delete, 1)
	})

	t.Run("stranger denied without writes", func(t *testing.T) {
		service, repo := newBusinessServiceForTest()
		business, err := service.CreateBusiness(context.Background(), testOwner.ID, businessCreateRequest())
		require.NoError(t, err)

		name := "Hijacked"
		_, err = service.UpdateBusiness(context.Background(), testStranger, business.ID, request_models.BusinessUpdateRequest{Name: &name})
		assert.ErrorIs(t, err, utils.ErrNotResourceOwner)
		assert.Zero(t, repo.updateCalls)
	})
}

func TestDeleteBusiness(t *testing.T) {
	service, repo := newBusinessServiceForTest()
	business, err := service.CreateBusiness(context.Background(), testOwner.ID, businessCreateRequest())
	require.NoError(t, err)

	_, err = service.DeleteBusiness(context.Background(), testStranger, business.ID)
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	_, err = service.DeleteBusiness(context.Background(), testAdmin, business.ID)
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), business.ID)
	assert.Nil(t, stored)
}
