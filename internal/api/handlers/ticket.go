package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketHandler handles HTTP requests for tickets
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicket creates a new ticket
// @Summary Create a ticket
// @Description Create a ticket in a scope. Priority defaults to P2, status starts at PLANNING. Engineers may not create tickets.
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} service.TicketResponse "Successfully created ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Scope not found"
// @Security CookieAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// UpdateTicketStatus changes a ticket's workflow status
// @Summary Update ticket status
// @Description Move a ticket to a new status and notify its assignees and creator. Engineers may only move tickets to IN_PROGRESS or AWAITING_REVIEW.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param status body service.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} service.TicketResponse "Successfully updated ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security CookieAuth
// @Router /tickets/{id}/status [patch]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	var req service.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.UpdateStatus(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AssignTicket replaces a ticket's assignee set
// @Summary Assign a ticket
// @Description Replace the ticket's assignees with the given users. Engineers may not assign tickets. Assignment does not notify anyone.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param assignees body service.AssignTicketRequest true "Assignee user IDs"
// @Success 200 {object} service.TicketResponse "Successfully assigned ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Ticket or user not found"
// @Security CookieAuth
// @Router /tickets/{id}/assignees [put]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	var req service.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Assign(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicket edits a ticket's descriptive fields
// @Summary Update a ticket
// @Description Edit a ticket's title, technical specs or priority. Allowed for the ticket's creator, Leads and Admins.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Fields to update"
// @Success 200 {object} service.TicketResponse "Successfully updated ticket"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security CookieAuth
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket ID"})
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
