package request_models

import "time"

type ActivityCreateRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=100"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	Description string    `json:"description" binding:"omitempty,max=1000"`
	EventID     string    `json:"event_id" binding:"required"`
}

type ActivityUpdateRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=2,max=100"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
}
