package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barrio/internal/models/request_models"
	"barrio/internal/models/response_models"
	"barrio/internal/services"
	"barrio/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{tagService: tagService}
}

func (t *TagController) Create(c *gin.Context) {
	var req request_models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tag, err := t.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTagResponse(*tag), "Tag created successfully")
}

func (t *TagController) Get(c *gin.Context) {
	tag, err := t.tagService.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTagResponse(*tag), "Fetched tag successfully")
}

func (t *TagController) List(c *gin.Context) {
	tags, err := t.tagService.GetAllTags(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTagResponses(tags), "Fetched tags successfully")
}

func (t *TagController) Update(c *gin.Context) {
	var req request_models.TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tag, err := t.tagService.UpdateTag(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTagResponse(*tag), "Tag updated successfully")
}

func (t *TagController) Delete(c *gin.Context) {
	tag, err := t.tagService.DeleteTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTagResponse(*tag), "Tag deleted successfully")
}
