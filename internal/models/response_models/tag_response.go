package response_models

import (
	"barrio/internal/models/db_models"
)

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewTagResponse(tag db_models.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func NewTagResponses(tags []db_models.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, NewTagResponse(tag))
	}
	return responses
}
