package response_models

import (
	"time"

	"barrio/internal/models/db_models"
)

type FileResponse struct {
	ID           string     `json:"id"`
	Filename     string     `json:"filename"`
	ContentType  string     `json:"content_type"`
	Category     string     `json:"category"`
	Path         string     `json:"path"`
	Hash         string     `json:"hash"`
	AccountID    *string    `json:"account_id,omitempty"`
	EventID      *string    `json:"event_id,omitempty"`
	BusinessID   *string    `json:"business_id,omitempty"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`
}

func NewFileResponse(file db_models.File) FileResponse {
	return FileResponse{
		ID:           file.ID,
		Filename:     file.Filename,
		ContentType:  file.ContentType,
		Category:     string(file.Category),
		Path:         file.Path,
		Hash:         file.Hash,
		AccountID:    file.AccountID,
		EventID:      file.EventID,
		BusinessID:   file.BusinessID,
		CreationDate: file.CreationDate,
		UpdateDate:   file.UpdateDate,
	}
}

func NewFileResponses(files []db_models.File) []FileResponse {
	responses := make([]FileResponse, 0, len(files))
	for _, file := range files {
		responses = append(responses, NewFileResponse(file))
	}
	return responses
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}
