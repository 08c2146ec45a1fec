package request_models

type TicketCreateRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Currency    string  `json:"currency" binding:"required,oneof=AED COP EUR GBP JPY PEN QAR USD"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	EventID     string  `json:"event_id" binding:"required"`
}

type TicketUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Cost        *float64 `json:"cost" binding:"omitempty,min=0"`
	Currency    *string  `json:"currency" binding:"omitempty,oneof=AED COP EUR GBP JPY PEN QAR USD"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
}
