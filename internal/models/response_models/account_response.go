package response_models

import (
	"time"

	"barrio/internal/models/db_models"
)

type AccountResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Type         string     `json:"type"`
	Phone        string     `json:"phone,omitempty"`
	Description  string     `json:"description,omitempty"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`
}

func NewAccountResponse(account db_models.Account) AccountResponse {
	return AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Type:         string(account.Type),
		Phone:        account.Phone,
		Description:  account.Description,
		CreationDate: account.CreationDate,
		UpdateDate:   account.UpdateDate,
	}
}

func NewAccountResponses(accounts []db_models.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}
	return responses
}

type TokenResponse struct {
	AccessToken         string    `json:"access_token"`
	TokenType           string    `json:"token_type"`
	TokenExpirationDate time.Time `json:"token_expiration_date"`
}
