package response_models

import (
	"time"

	"barrio/internal/models/db_models"
)

type EventResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Frequency    string     `json:"frequency"`
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
	Price        float64    `json:"price"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`

	Activities []ActivityResponse `json:"activities"`
	Tickets    []TicketResponse   `json:"tickets"`
	Files      []FileResponse     `json:"files"`
	Tags       []TagResponse      `json:"tags"`
}

func NewEventResponse(event db_models.Event) EventResponse {
	return EventResponse{
		ID:           event.ID,
		Name:         event.Name,
		Category:     string(event.Category),
		Frequency:    string(event.Frequency),
		Email:        event.Email,
		Phone:        event.Phone,
		Address:      event.Address,
		Country:      event.Country,
		Municipality: event.Municipality,
		City:         event.City,
		Postcode:     event.Postcode,
		Region:       event.Region,
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		IsPublic:     event.IsPublic,
		Description:  event.Description,
		URLs:         event.URLs,
		Price:        event.Price,
		StartDate:    event.StartDate,
		EndDate:      event.EndDate,
		CreationDate: event.CreationDate,
		UpdateDate:   event.UpdateDate,
		Activities:   NewActivityResponses(event.Activities),
		Tickets:      NewTicketResponses(event.Tickets),
		Files:        NewFileResponses(event.Files),
		Tags:         NewTagResponses(event.Tags),
	}
}

func NewEventResponses(events []db_models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewEventResponse(event))
	}
	return responses
}

type ActivityResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Description  string     `json:"description,omitempty"`
	EventID      string     `json:"event_id"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`
}

func NewActivityResponse(activity db_models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           activity.ID,
		Name:         activity.Name,
		StartDate:    activity.StartDate,
		EndDate:      activity.EndDate,
		Description:  activity.Description,
		EventID:      activity.EventID,
		CreationDate: activity.CreationDate,
		UpdateDate:   activity.UpdateDate,
	}
}

func NewActivityResponses(activities []db_models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, NewActivityResponse(activity))
	}
	return responses
}

type TicketResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Cost         float64    `json:"cost"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description,omitempty"`
	EventID      string     `json:"event_id"`
	CreationDate time.Time  `json:"creation_date"`
	UpdateDate   *time.Time `json:"update_date,omitempty"`
}

func NewTicketResponse(ticket db_models.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		Name:         ticket.Name,
		Cost:         ticket.Cost,
		Currency:     string(ticket.Currency),
		Description:  ticket.Description,
		EventID:      ticket.EventID,
		CreationDate: ticket.CreationDate,
		UpdateDate:   ticket.UpdateDate,
	}
}

func NewTicketResponses(tickets []db_models.Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, NewTicketResponse(ticket))
	}
	return responses
}
