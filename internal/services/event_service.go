package services

import (
	"context"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/models/request_models"
	"barrio/internal/repositories"
	"barrio/pkg/reconcile"
	"barrio/pkg/utils"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, accountID string, request request_models.EventCreateRequest) (*db_models.Event, error)
	GetEvent(ctx context.Context, id string) (*db_models.Event, error)
	GetEvents(ctx context.Context, filter repositories.EventFilter) ([]db_models.Event, error)
	GetPublicEvents(ctx context.Context, filter repositories.EventFilter) ([]db_models.Event, error)
	UpdateEvent(ctx context.Context, requester *db_models.Account, id string, request request_models.EventUpdateRequest) (*db_models.Event, error)
	DeleteEvent(ctx context.Context, requester *db_models.Account, id string) (*db_models.Event, error)
}

type EventService struct {
	eventRepo repositories.EventRepository
	logger    *zap.Logger
}

func NewEventService(eventRepo repositories.EventRepository, logger *zap.Logger) EventServiceInterface {
	return &EventService{eventRepo: eventRepo, logger: logger}
}

func (e *EventService) CreateEvent(ctx context.Context, accountID string, request request_models.EventCreateRequest) (*db_models.Event, error) {
	event := &db_models.Event{
		Name:         request.Name,
		Category:     db_models.EventCategory(request.Category),
		Frequency:    db_models.FrequencyNone,
		Email:        request.Email,
		Phone:        request.Phone,
		Address:      request.Address,
		Country:      request.Country,
		Municipality: request.Municipality,
		City:         request.City,
		Postcode:     request.Postcode,
		Region:       request.Region,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		IsPublic:     request.IsPublic,
		URLs:         request.URLs,
		Price:        request.Price,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		AccountID:    accountID,
	}
	event.Description = request.Description
	if request.Frequency != "" {
		event.Frequency = db_models.EventFrequency(request.Frequency)
	}

	for _, payload := range reconcile.DedupeByName(request.Activities, activityName) {
		event.Activities = append(event.Activities, newActivity(payload, ""))
	}
	for _, payload := range reconcile.DedupeByName(request.Tickets, ticketName) {
		event.Tickets = append(event.Tickets, newTicket(payload, ""))
	}
	for _, payload := range request.Files {
		event.Files = append(event.Files, newEventFile(payload, ""))
	}

	if err := e.eventRepo.Insert(ctx, event, tagIDs(request.Tags)); err != nil {
		return nil, translateRepoError(err)
	}

	fresh, err := e.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	e.logger.Info("created event", zap.String("event_id", fresh.ID), zap.String("account_id", accountID))
	return fresh, nil
}

func (e *EventService) GetEvent(ctx context.Context, id string) (*db_models.Event, error) {
	event, err := e.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}

func (e *EventService) GetEvents(ctx context.Context, filter repositories.EventFilter) ([]db_models.Event, error) {
	events, err := e.eventRepo.Find(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

// GetPublicEvents ignores any visibility the caller asked for: the public
// listing only ever serves events whose owners published them.
func (e *EventService) GetPublicEvents(ctx context.Context, filter repositories.EventFilter) ([]db_models.Event, error) {
	public := true
	filter.IsPublic = &public
	return e.GetEvents(ctx, filter)
}

func (e *EventService) UpdateEvent(ctx context.Context, requester *db_models.Account, id string, request request_models.EventUpdateRequest) (*db_models.Event, error) {
	event, err := e.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}

	mergeEventScalars(event, request)

	children := repositories.EventChildrenUpdate{}

	if request.Activities != nil {
		desired := reconcile.DedupeByName(request.Activities, activityName)
		plan := reconcile.Build(activityIDs(event.Activities), desired, func(p request_models.ActivityPayload) string { return p.ID })
		children.Activities = &repositories.ChildSet[db_models.Activity]{
			Keep:   plan.Keep,
			Delete: plan.Delete,
		}
		for _, payload := range plan.Create {
			children.Activities.Create = append(children.Activities.Create, newActivity(payload, event.ID))
		}
	}

	if request.Tickets != nil {
		desired := reconcile.DedupeByName(request.Tickets, ticketName)
		plan := reconcile.Build(ticketIDs(event.Tickets), desired, func(p request_models.TicketPayload) string { return p.ID })
		children.Tickets = &repositories.ChildSet[db_models.Ticket]{
			Keep:   plan.Keep,
			Delete: plan.Delete,
		}
		for _, payload := range plan.Create {
			children.Tickets.Create = append(children.Tickets.Create, newTicket(payload, event.ID))
		}
	}

	if request.Files != nil {
		plan := reconcile.BuildByCategory(labeledFiles(event.Files), request.Files,
			func(p request_models.FilePayload) string { return p.ID },
			func(p request_models.FilePayload) string { return p.Category })
		children.Files = &repositories.ChildSet[db_models.File]{
			Keep:   plan.Keep,
			Delete: plan.Delete,
		}
		for _, payload := range plan.Create {
			children.Files.Create = append(children.Files.Create, newEventFile(payload, event.ID))
		}
	}

	if request.Tags != nil {
		children.TagIDs = tagIDs(request.Tags)
		children.ReplaceTags = true
	}

	if err := e.eventRepo.Update(ctx, event, children); err != nil {
		return nil, translateRepoError(err)
	}

	e.logger.Info("updated event", zap.String("event_id", event.ID))
	return event, nil
}

func (e *EventService) DeleteEvent(ctx context.Context, requester *db_models.Account, id string) (*db_models.Event, error) {
	event, err := e.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.AccountID != requester.ID && !requester.IsAdmin() {
		return nil, utils.ErrNotResourceOwner
	}

	if err := e.eventRepo.Delete(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	e.logger.Info("deleted event", zap.String("event_id", event.ID))
	return event, nil
}

func mergeEventScalars(event *db_models.Event, request request_models.EventUpdateRequest) {
	if request.Name != nil {
		event.Name = *request.Name
	}
	if request.Category != nil {
		event.Category = db_models.EventCategory(*request.Category)
	}
	if request.Frequency != nil {
		event.Frequency = db_models.EventFrequency(*request.Frequency)
	}
	if request.Email != nil {
		event.Email = *request.Email
	}
	if request.Phone != nil {
		event.Phone = *request.Phone
	}
	if request.Address != nil {
		event.Address = *request.Address
	}
	if request.Country != nil {
		event.Country = *request.Country
	}
	if request.Municipality != nil {
		event.Municipality = *request.Municipality
	}
	if request.City != nil {
		event.City = *request.City
	}
	if request.Postcode != nil {
		event.Postcode = *request.Postcode
	}
	if request.Region != nil {
		event.Region = *request.Region
	}
	if request.Latitude != nil {
		event.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		event.Longitude = *request.Longitude
	}
	if request.IsPublic != nil {
		event.IsPublic = *request.IsPublic
	}
	if request.Description != nil {
		event.Description = *request.Description
	}
	if request.URLs != nil {
		event.URLs = request.URLs
	}
	if request.Price != nil {
		event.Price = *request.Price
	}
	if request.StartDate != nil {
		event.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		event.EndDate = *request.EndDate
	}
}

func newActivity(payload request_models.ActivityPayload, eventID string) db_models.Activity {
	return db_models.Activity{
		Name:      payload.Name,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		EventID:   eventID,
	}
}

func newTicket(payload request_models.TicketPayload, eventID string) db_models.Ticket {
	return db_models.Ticket{
		Name:     payload.Name,
		Cost:     payload.Cost,
		Currency: db_models.Currency(payload.Currency),
		EventID:  eventID,
	}
}

func newEventFile(payload request_models.FilePayload, eventID string) db_models.File {
	file := db_models.File{
		Filename:    payload.Filename,
		ContentType: payload.ContentType,
		Category:    db_models.FileCategory(payload.Category),
		Path:        payload.Path,
		Hash:        payload.Hash,
	}
	if eventID != "" {
		file.EventID = &eventID
	}
	return file
}

func activityName(p request_models.ActivityPayload) string { return p.Name }
func ticketName(p request_models.TicketPayload) string     { return p.Name }

func activityIDs(activities []db_models.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}

func ticketIDs(tickets []db_models.Ticket) []string {
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	return ids
}

func labeledFiles(files []db_models.File) []reconcile.Labeled {
	labeled := make([]reconcile.Labeled, 0, len(files))
	for _, f := range files {
		labeled = append(labeled, reconcile.Labeled{ID: f.ID, Category: string(f.Category)})
	}
	return labeled
}

func tagIDs(refs []request_models.TagReference) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

// translateRepoError keeps the sentinel errors the repositories raise during a
// child-set apply and folds everything else into the generic database error.
func translateRepoError(err error) error {
	switch err {
	case utils.ErrActivityNotFound, utils.ErrTicketNotFound, utils.ErrFileNotFound,
		utils.ErrTagNotFound, utils.ErrSocialNetworkNotFound:
		return err
	default:
		return utils.ErrDatabaseError
	}
}
