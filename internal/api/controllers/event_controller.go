package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barrio/internal/models/request_models"
	"barrio/internal/models/response_models"
	"barrio/internal/repositories"
	"barrio/internal/services"
	"barrio/pkg/middleware"
	"barrio/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

func (e *EventController) Create(c *gin.Context) {
	var req request_models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	event, err := e.eventService.CreateEvent(c.Request.Context(), requester.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(*event), "Event created successfully")
}

func (e *EventController) Get(c *gin.Context) {
	event, err := e.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(*event), "Fetched event successfully")
}

// ListOwn returns the authenticated account's events, regardless of
// visibility.
func (e *EventController) ListOwn(c *gin.Context) {
	filter := eventFilterFromQuery(c)
	filter.AccountID = middleware.CurrentAccount(c).ID

	events, err := e.eventService.GetEvents(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponses(events), "Fetched events successfully")
}

// ListPublic serves the unauthenticated listing; visibility is forced server
// side.
func (e *EventController) ListPublic(c *gin.Context) {
	events, err := e.eventService.GetPublicEvents(c.Request.Context(), eventFilterFromQuery(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponses(events), "Fetched events successfully")
}

func (e *EventController) Update(c *gin.Context) {
	var req request_models.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	event, err := e.eventService.UpdateEvent(c.Request.Context(), requester, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(*event), "Event updated successfully")
}

func (e *EventController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	event, err := e.eventService.DeleteEvent(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(*event), "Event deleted successfully")
}

func eventFilterFromQuery(c *gin.Context) repositories.EventFilter {
	return repositories.EventFilter{
		City:              c.Query("city"),
		Categories:        c.QueryArray("category"),
		ExcludeCategories: c.QueryArray("exclude_category"),
		URLs:              c.QueryArray("url"),
	}
}
