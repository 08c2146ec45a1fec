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

type TicketController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketController(ticketService services.TicketServiceInterface) *TicketController {
	return &TicketController{ticketService: ticketService}
}

func (t *TicketController) Create(c *gin.Context) {
	var req request_models.TicketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	ticket, err := t.ticketService.CreateTicket(c.Request.Context(), requester, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTicketResponse(*ticket), "Ticket created successfully")
}

func (t *TicketController) Get(c *gin.Context) {
	ticket, err := t.ticketService.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTicketResponse(*ticket), "Fetched ticket successfully")
}

func (t *TicketController) List(c *gin.Context) {
	tickets, err := t.ticketService.GetTickets(c.Request.Context(), repositories.TicketFilter{
		EventID: c.Query("event_id"),
		Name:    c.Query("name"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTicketResponses(tickets), "Fetched tickets successfully")
}

func (t *TicketController) Update(c *gin.Context) {
	var req request_models.TicketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	requester := middleware.CurrentAccount(c)
	ticket, err := t.ticketService.UpdateTicket(c.Request.Context(), requester, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTicketResponse(*ticket), "Ticket updated successfully")
}

func (t *TicketController) Delete(c *gin.Context) {
	requester := middleware.CurrentAccount(c)
	ticket, err := t.ticketService.DeleteTicket(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewTicketResponse(*ticket), "Ticket deleted successfully")
}
