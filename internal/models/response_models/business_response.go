package response_models

import (
	"time"

	"barrio/internal/models/db_models"
)

type BusinessResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address"`
	Country      string     `json:"country"`
	Municipality string     `json:"municipality"`
	City         string     `json:"city"`
	Postcode     string     `json:"postcode"`
	Region       string     `json:"region"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	IsPublic     bool       `json:"is_public"`
	Description  string     `json:"description,omitempty"`
	URLs         []string   `json:"urls"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`

	SocialNetworks []SocialNetworkResponse `json:"social_networks"`
	Files          []FileResponse          `json:"files"`
	Tags           []TagResponse           `json:"tags"`
}

func NewBusinessResponse(business db_models.Business) BusinessResponse {
	return BusinessResponse{
		ID:             business.ID,
		Name:           business.Name,
		Category:       string(business.Category),
		Email:          business.Email,
		Phone:          business.Phone,
		Address:        business.Address,
		Country:        business.Country,
		Municipality:   business.Municipality,
		City:           business.City,
		Postcode:       business.Postcode,
		Region:         business.Region,
		Latitude:       business.Latitude,
		Longitude:      business.Longitude,
		IsPublic:       business.IsPublic,
		Description:    business.Description,
		URLs:           business.URLs,
		CreationDate:   business.CreationDate,
		UpdateDate:     business.UpdateDate,
		SocialNetworks: NewSocialNetworkResponses(business.SocialNetworks),
		Files:          NewFileResponses(business.Files),
		Tags:           NewTagResponses(business.Tags),
	}
}

func NewBusinessResponses(businesses []db_models.Business) []BusinessResponse {
	responses := make([]BusinessResponse, 0, len(businesses))
	for _, business := range businesses {
		responses = append(responses, NewBusinessResponse(business))
	}
	return responses
}

type SocialNetworkResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Category   string `json:"category"`
	BusinessID string `json:"business_id"`
}

func NewSocialNetworkResponses(networks []db_models.SocialNetwork) []SocialNetworkResponse {
	responses := make([]SocialNetworkResponse, 0, len(networks))
	for _, network := range networks {
		responses = append(responses, SocialNetworkResponse{
			ID:         network.ID,
			URL:        network.URL,
			Category:   string(network.Category),
			BusinessID: network.BusinessID,
		})
	}
	return responses
}
