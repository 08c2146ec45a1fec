package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors onto client responses.
// Internal detail stays in the logs, never in the payload.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrBusinessNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrTicketNotFound),
		errors.Is(err, ErrTagNotFound),
		errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrSocialNetworkNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotResourceOwner), errors.Is(err, ErrAdminRequired):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "could not validate credentials")
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrResetTokenInvalid):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
