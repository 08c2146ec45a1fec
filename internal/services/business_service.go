package services

import (
	"context"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/reconcile"
	"barrio/pkg/utils"
)

type BusinessServiceInterface interface {
	CreateBusiness(ctx context.Context, accountID string, request request_models.BusinessCreateRequest) (*db_models.Business, error)
	GetBusiness(ctx context.Context, id string) (*db_models.Business, error)
	GetBusinesses(ctx context.Context, filter repositories.BusinessFilter) ([]db_models.Business, error)
	GetPublicBusinesses(ctx context.Context, filter repositories.BusinessFilter) ([]db_models.Business, error)
	UpdateBusiness(ctx context.Context, requester *db_models.Account, id string, request request_models.BusinessUpdateRequest) (*db_models.Business, error)
	DeleteBusiness(ctx context.Context, requester *db_models.Account, id string) (*db_models.Business, error)
}

type BusinessService struct {
	businessRepo repositories.BusinessRepository
	logger       *zap.Logger
}

func NewBusinessService(businessRepo repositories.BusinessRepository, logger *zap.Logger) BusinessServiceInterface {
	return &BusinessService{businessRepo: businessRepo, logger: logger}
}

func (b *BusinessService) CreateBusiness(ctx context.Context, accountID string, request request_models.BusinessCreateRequest) (*db_models.Business, error) {
	business := &db_models.Business{
		Name:         request.Name,
		Category:     db_models.BusinessCategory(request.Category),
		Email:        request.Email,
		Phone:        request.Phone,
		Address:      request.Address,
		Country:      request.Country,
		Municipality: request.Municipality,
		City:         request.City,
		Postcode:     request.Postcode,
		Region:       request.Region,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		IsPublic:     request.IsPublic,
		URLs:         request.URLs,
		AccountID:    accountID,
	}
	business.Description = request.Description

	// The id is assigned up front because join-table files carry it as a
	// plain column, which gorm will not backfill the way it does has-many
	// foreign keys.
	business.ID = utils.NewID("business")

	for _, payload := range request.SocialNetworks {
		business.SocialNetworks = append(business.SocialNetworks, newSocialNetwork(payload, ""))
	}
	for _, payload := range request.Files {
		business.Files = append(business.Files, newBusinessFile(payload, business.ID))
	}

	if err := b.businessRepo.Insert(ctx, business, tagIDs(request.Tags)); err != nil {
		return nil, translateRepoError(err)
	}

	fresh, err := b.businessRepo.FindByID(ctx, business.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	b.logger.Info("created business", zap.String("business_id", fresh.ID), zap.String("account_id", accountID))
	return fresh, nil
}

func (b *BusinessService) GetBusiness(ctx context.Context, id string) (*db_models.Business, error) {
	business, err := b.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if business == nil {
		return nil, utils.ErrBusinessNotFound
	}
	return business, nil
}

func (b *BusinessService) GetBusinesses(ctx context.Context, filter repositories.BusinessFilter) ([]db_models.Business, error) {
	businesses, err := b.businessRepo.Find(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return businesses, nil
}

func (b *BusinessService) GetPublicBusinesses(ctx context.Context, filter repositories.BusinessFilter) ([]db_models.Business, error) {
	public := true
	filter.IsPublic = &public
	return b.GetBusinesses(ctx, filter)
}

func (b *BusinessService) UpdateBusiness(ctx context.Context, requester *db_models.Account, id string, request request_models.BusinessUpdateRequest) (*db_models.Business, error) {
	business, err := b.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}

	mergeBusinessScalars(business, request)

	children := repositories.BusinessChildrenUpdate{}

	if request.SocialNetworks != nil {
		plan := reconcile.Build(socialNetworkIDs(business.SocialNetworks), request.SocialNetworks,
			func(p request_models.SocialNetworkPayload) string { return p.ID })
		children.SocialNetworks = &repositories.ChildSet[db_models.SocialNetwork]{
			Keep:   plan.Keep,
			Delete: plan.Delete,
		}
		for _, payload := range plan.Create {
			children.SocialNetworks.Create = append(children.SocialNetworks.Create, newSocialNetwork(payload, business.ID))
		}
	}

	if request.Files != nil {
		plan := reconcile.BuildByCategory(labeledFiles(business.Files), request.Files,
			func(p request_models.FilePayload) string { return p.ID },
			func(p request_models.FilePayload) string { return p.Category })
		children.Files = &repositories.ChildSet[db_models.File]{
			Keep:   plan.Keep,
			Delete: plan.Delete,
		}
		for _, payload := range plan.Create {
			children.Files.Create = append(children.Files.Create, newBusinessFile(payload, business.ID))
		}
	}

	if request.Tags != nil {
		children.TagIDs = tagIDs(request.Tags)
		children.ReplaceTags = true
	}

	if err := b.businessRepo.Update(ctx, business, children); err != nil {
		return nil, translateRepoError(err)
	}

	b.logger.Info("updated business", zap.String("business_id", business.ID))
	return business, nil
}

func (b *BusinessService) DeleteBusiness(ctx context.Context, requester *db_models.Account, id string) (*db_models.Business, error) {
	business, err := b.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}

	if err := b.businessRepo.Delete(ctx, business); err != nil {
		return nil, utils.ErrDatabaseError
	}

	b.logger.Info("deleted business", zap.String("business_id", business.ID))
	return business, nil
}

func mergeBusinessScalars(business *db_models.Business, request request_models.BusinessUpdateRequest) {
	if request.Name != nil {
		business.Name = *request.Name
	}
	if request.Category != nil {
		business.Category = db_models.BusinessCategory(*request.Category)
	}
	if request.Email != nil {
		business.Email = *request.Email
	}
	if request.Phone != nil {
		business.Phone = *request.Phone
	}
	if request.Address != nil {
		business.Address = *request.Address
	}
	if request.Country != nil {
		business.Country = *request.Country
	}
	if request.Municipality != nil {
		business.Municipality = *request.Municipality
	}
	if request.City != nil {
		business.City = *request.City
	}
	if request.Postcode != nil {
		business.Postcode = *request.Postcode
	}
	if request.Region != nil {
		business.Region = *request.Region
	}
	if request.Latitude != nil {
		business.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		business.Longitude = *request.Longitude
	}
	if request.IsPublic != nil {
		business.IsPublic = *request.IsPublic
	}
	if request.Description != nil {
		business.Description = *request.Description
	}
	if request.URLs != nil {
		business.URLs = request.URLs
	}
}

func newSocialNetwork(payload request_models.SocialNetworkPayload, businessID string) db_models.SocialNetwork {
	return db_models.SocialNetwork{
		URL:        payload.URL,
		Category:   db_models.SocialNetworkCategory(payload.Category),
		BusinessID: businessID,
	}
}

func newBusinessFile(payload request_models.FilePayload, businessID string) db_models.File {
	file := newEventFile(payload, "")
	file.BusinessID = &businessID
	return file
}

func socialNetworkIDs(networks []db_models.SocialNetwork) []string {
	ids := make([]string, 0, len(networks))
	for _, n := range networks {
		ids = append(ids, n.ID)
	}
	return ids
}
