package request_models

import "time"

type EventCreateRequest struct {
	Name         string  `json:"name" binding:"required,min=3,max=100"`
	Category     string  `json:"category" binding:"required,oneof=conference workshop meetup festival"`
	Frequency    string  `json:"frequency" binding:"omitempty,oneof=none daily weekly monthly"`
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

	URLs  []string `json:"urls"`
	Price float64  `json:"price" binding:"min=0"`

	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required,gtfield=StartDate"`

	Activities []ActivityPayload `json:"activities"`
	Tickets    []TicketPayload   `json:"tickets"`
	Files      []FilePayload     `json:"files"`
	Tags       []TagReference    `json:"tags"`
}

type EventUpdateRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=3,max=100"`
	Category     *string  `json:"category" binding:"omitempty,oneof=conference workshop meetup festival"`
	Frequency    *string  `json:"frequency" binding:"omitempty,oneof=none daily weekly monthly"`
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

	URLs  []string `json:"urls"`
	Price *float64 `json:"price" binding:"omitempty,min=0"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Child collections follow desired-state semantics: an element with an id
	// keeps that child, an element without one creates a new child, and
	// anything persisted but absent here is deleted. A nil slice leaves the
	// collection alone.
	Activities []ActivityPayload `json:"activities"`
	Tickets    []TicketPayload   `json:"tickets"`
	Files      []FilePayload     `json:"files"`
	Tags       []TagReference    `json:"tags"`
}

// ActivityPayload is a desired-state element of an event's activity list.
type ActivityPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type TicketPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

type FilePayload struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Category    string `json:"category"`
	Path        string `json:"path"`
	Hash        string `json:"hash"`
}

type TagReference struct {
	ID string `json:"id" binding:"required"`
}
