package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

type TicketFilter struct {
	EventID string
	Name    string
}

type TicketRepository interface {
	Insert(ctx context.Context, ticket *db_models.Ticket) error
	FindByID(ctx context.Context, id string) (*db_models.Ticket, error)
	Find(ctx context.Context, filter TicketFilter) ([]db_models.Ticket, error)
	Save(ctx context.Context, ticket *db_models.Ticket) error
	Delete(ctx context.Context, ticket *db_models.Ticket) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (t *ticketRepository) Insert(ctx context.Context, ticket *db_models.Ticket) error {
	return t.db.WithContext(ctx).Create(ticket).Error
}

func (t *ticketRepository) FindByID(ctx context.Context, id string) (*db_models.Ticket, error) {
	var ticket db_models.Ticket
	err := t.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (t *ticketRepository) Find(ctx context.Context, filter TicketFilter) ([]db_models.Ticket, error) {
	query := t.db.WithContext(ctx)
	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var tickets []db_models.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (t *ticketRepository) Save(ctx context.Context, ticket *db_models.Ticket) error {
	return t.db.WithContext(ctx).Save(ticket).Error
}

func (t *ticketRepository) Delete(ctx context.Context, ticket *db_models.Ticket) error {
	return t.db.WithContext(ctx).Delete(ticket).Error
}
