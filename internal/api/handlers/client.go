package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	clientService service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients lists active clients with their projects
// @Summary List clients
// @Description Get the active clients and their projects. Inactive clients are not listed.
// @Tags clients
// @Produce json
// @Success 200 {array} service.ClientResponse "Successfully retrieved clients"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security CookieAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	clients, err := h.clientService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
