package services

import (
	"context"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/utils"
)

type TicketServiceInterface interface {
	CreateTicket(ctx context.Context, requester *db_models.Account, request request_models.TicketCreateRequest) (*db_models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*db_models.Ticket, error)
	GetTickets(ctx context.Context, filter repositories.TicketFilter) ([]db_models.Ticket, error)
	UpdateTicket(ctx context.Context, requester *db_models.Account, id string, request request_models.TicketUpdateRequest) (*db_models.Ticket, error)
	DeleteTicket(ctx context.Context, requester *db_models.Account, id string) (*db_models.Ticket, error)
}

type TicketService struct {
	ticketRepo repositories.TicketRepository
	eventRepo  repositories.EventRepository
	logger     *zap.Logger
}

func NewTicketService(
	ticketRepo repositories.TicketRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) TicketServiceInterface {
	return &TicketService{ticketRepo: ticketRepo, eventRepo: eventRepo, logger: logger}
}

// CreateTicket upserts by name within the event, like activities.
func (t *TicketService) CreateTicket(ctx context.Context, requester *db_models.Account, request request_models.TicketCreateRequest) (*db_models.Ticket, error) {
	event, err := t.ownedEvent(ctx, requester, request.EventID)
	if err != nil {
		return nil, err
	}

	existing, err := t.ticketRepo.Find(ctx, repositories.TicketFilter{EventID: event.ID, Name: request.Name})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	ticket := &db_models.Ticket{
		Name:     request.Name,
		Cost:     request.Cost,
		Currency: db_models.Currency(request.Currency),
		EventID:  event.ID,
	}
	ticket.Description = request.Description

	if err := t.ticketRepo.Insert(ctx, ticket); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("created ticket", zap.String("ticket_id", ticket.ID), zap.String("event_id", event.ID))
	return ticket, nil
}

func (t *TicketService) GetTicket(ctx context.Context, id string) (*db_models.Ticket, error) {
	ticket, err := t.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ticket == nil {
		return nil, utils.ErrTicketNotFound
	}
	return ticket, nil
}

func (t *TicketService) GetTickets(ctx context.Context, filter repositories.TicketFilter) ([]db_models.Ticket, error) {
	tickets, err := t.ticketRepo.Find(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tickets, nil
}

func (t *TicketService) UpdateTicket(ctx context.Context, requester *db_models.Account, id string, request request_models.TicketUpdateRequest) (*db_models.Ticket, error) {
	ticket, err := t.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := t.ownedEvent(ctx, requester, ticket.EventID); err != nil {
		return nil, err
	}

	if request.Name != nil {
		ticket.Name = *request.Name
	}
	if request.Cost != nil {
		ticket.Cost = *request.Cost
	}
	if request.Currency != nil {
		ticket.Currency = db_models.Currency(*request.Currency)
	}
	if request.Description != nil {
		ticket.Description = *request.Description
	}

	if err := t.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("updated ticket", zap.String("ticket_id", ticket.ID))
	return ticket, nil
}

func (t *TicketService) DeleteTicket(ctx context.Context, requester *db_models.Account, id string) (*db_models.Ticket, error) {
	ticket, err := t.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := t.ownedEvent(ctx, requester, ticket.EventID); err != nil {
		return nil, err
	}

	if err := t.ticketRepo.Delete(ctx, ticket); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.logger.Info("deleted ticket", zap.String("ticket_id", ticket.ID))
	return ticket, nil
}

func (t *TicketService) ownedEvent(ctx context.Context, requester *db_models.Account, eventID string) (*db_models.Event, error) {
	event, err := t.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if event.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}
	return event, nil
}
