package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barrio/internal/models/request_models"
	"barrio/internal/models/response_models"
	"barrio/internal/repositories"
	"barrio/internal/services"
	"barrio/pkg/middleware"
	"barrio/pkg/utils"
)

type BusinessController struct {
	businessService services.BusinessServiceInterface
}

func NewBusinessController(businessService services.BusinessServiceInterface) *BusinessController {
	return &BusinessController{businessService: businessService}
}

func (b *BusinessController) Create(c *gin.Context) {
	var req request_models.BusinessCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	business, err := b.businessService.CreateBusiness(c.Request.Context(), requester.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponse(*business), "Business created successfully")
}

func (b *BusinessController) Get(c *gin.Context) {
	business, err := b.businessService.GetBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponse(*business), "Fetched business successfully")
}

func (b *BusinessController) ListOwn(c *gin.Context) {
	filter := businessFilterFromQuery(c)
	filter.AccountID = middleware.CurrentAccount(c).ID

	businesses, err := b.businessService.GetBusinesses(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponses(businesses), "Fetched businesses successfully")
}

func (b *BusinessController) ListPublic(c *gin.Context) {
	businesses, err := b.businessService.GetPublicBusinesses(c.Request.Context(), businessFilterFromQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponses(businesses), "Fetched businesses successfully")
}

func (b *BusinessController) Update(c *gin.Context) {
	var req request_models.BusinessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	business, err := b.businessService.UpdateBusiness(c.Request.Context(), requester, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponse(*business), "Business updated successfully")
}

func (b *BusinessController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	business, err := b.businessService.DeleteBusiness(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewBusinessResponse(*business), "Business deleted successfully")
}

func businessFilterFromQuery(c *gin.Context) repositories.BusinessFilter {
	return repositories.BusinessFilter{
		City:              c.Query("city"),
		Categories:        c.QueryArray("category"),
		ExcludeCategories: c.QueryArray("exclude_category"),
		URLs:              c.QueryArray("url"),
	}
}
