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

type FileController struct {
	fileService services.FileServiceInterface
}

func NewFileController(fileService services.FileServiceInterface) *FileController {
	return &FileController{fileService: fileService}
}

func (f *FileController) Create(c *gin.Context) {
	var req request_models.FileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	file, err := f.fileService.CreateFile(c.Request.Context(), requester.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewFileResponse(*file), "File created successfully")
}

func (f *FileController) Get(c *gin.Context) {
	file, err := f.fileService.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewFileResponse(*file), "Fetched file successfully")
}

func (f *FileController) List(c *gin.Context) {
	files, err := f.fileService.GetFiles(c.Request.Context(), repositories.FileFilter{
		AccountID:  c.Query("account_id"),
		EventID:    c.Query("event_id"),
		BusinessID: c.Query("business_id"),
		Category:   c.Query("category"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewFileResponses(files), "Fetched files successfully")
}

func (f *FileController) Update(c *gin.Context) {
	var req request_models.FileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	file, err := f.fileService.UpdateFile(c.Request.Context(), requester, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewFileResponse(*file), "File updated successfully")
}

func (f *FileController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	file, err := f.fileService.DeleteFile(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewFileResponse(*file), "File deleted successfully")
}

// PresignUpload hands out a signed PUT URL; the bytes never pass through the
// API.
func (f *FileController) PresignUpload(c *gin.Context) {
	var req request_models.PresignedURLRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	signed, err := f.fileService.PresignedUploadURL(c.Request.Context(), requester.ID, req.Filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, signed, "Upload URL generated")
}

func (f *FileController) PresignDownload(c *gin.Context) {
	signed, err := f.fileService.PresignedDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, signed, "Download URL generated")
}
