package ticketfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barrio/internal/repositories"
	"barrio/internal/services"
)

var Module = fx.Provide(
	provideTicketRepo, provideTicketService)

func provideTicketRepo(db *gorm.DB) repositories.TicketRepository {
	return repositories.NewTicketRepository(db)
}

func provideTicketService(
	ticketRepo repositories.TicketRepository,
	eventRepo repositories.EventRepository,
	logger *zap.Logger,
) services.TicketServiceInterface {
	return services.NewTicketService(ticketRepo, eventRepo, logger)
}
