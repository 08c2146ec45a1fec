package request_models

type BusinessCreateRequest struct {
	Name         string  `json:"name" binding:"required,min=3,max=100"`
	Category     string  `json:"category" binding:"required,oneof=artist restaurant cafe boutique exposition association academy"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address" binding:"required,min=5,max=200"`
	Country      string  `json:"country" binding:"required,min=2,max=50"`
	Municipality string  `json:"municipality" binding:"required,min=2,max=50"`
	City         string  `json:"city" binding:"required,min=2,max=50"`
	Postcode     string  `json:"postcode" binding:"required,min=2,max=20"`
	Region       string  `json:"region" binding:"required,min=2,max=50"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	IsPublic     bool    `json:"is_public"`
	Description  string  `json:"description" binding:"omitempty,max=1000"`

	URLs []string `json:"urls"`

	SocialNetworks []SocialNetworkPayload `json:"social_networks"`
	Files          []FilePayload          `json:"files"`
	Tags           []TagReference         `json:"tags"`
}

type BusinessUpdateRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=3,max=100"`
	Category     *string  `json:"category" binding:"omitempty,oneof=artist restaurant cafe boutique exposition association academy"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address" binding:"omitempty,min=5,max=200"`
	Country      *string  `json:"country" binding:"omitempty,min=2,max=50"`
	Municipality *string  `json:"municipality" binding:"omitempty,min=2,max=50"`
	City         *string  `json:"city" binding:"omitempty,min=2,max=50"`
	Postcode     *string  `json:"postcode" binding:"omitempty,min=2,max=20"`
	Region       *string  `json:"region" binding:"omitempty,min=2,max=50"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	IsPublic     *bool    `json:"is_public"`
	Description  *string  `json:"description" binding:"omitempty,max=1000"`

	URLs []string `json:"urls"`

	SocialNetworks []SocialNetworkPayload `json:"social_networks"`
	Files          []FilePayload          `json:"files"`
	Tags           []TagReference         `json:"tags"`
}

type SocialNetworkPayload struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Category string `json:"category"`
}
