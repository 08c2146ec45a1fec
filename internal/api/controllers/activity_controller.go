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

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

func (a *ActivityController) Create(c *gin.Context) {
	var req request_models.ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	activity, err := a.activityService.CreateActivity(c.Request.Context(), requester, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Activity created successfully")
}

func (a *ActivityController) Get(c *gin.Context) {
	activity, err := a.activityService.GetActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Fetched activity successfully")
}

func (a *ActivityController) List(c *gin.Context) {
	activities, err := a.activityService.GetActivities(c.Request.Context(), repositories.ActivityFilter{
		EventID: c.Query("event_id"),
		Name:    c.Query("name"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponses(activities), "Fetched activities successfully")
}

func (a *ActivityController) Update(c *gin.Context) {
	var req request_models.ActivityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	activity, err := a.activityService.UpdateActivity(c.Request.Context(), requester, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Activity updated successfully")
}

func (a *ActivityController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	activity, err := a.activityService.DeleteActivity(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewActivityResponse(*activity), "Activity deleted successfully")
}
