package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkou/crmdesk/internal/server/http/dto"
)

// ClientHandler manages client record endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// List handles GET /clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.facade.Clients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, dto.NewClientResponse(client))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.facade.Client(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClientResponse(*client))
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var payload dto.ClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed client payload"})
		return
	}

	client, err := h.facade.CreateClient(c.Request.Context(), payload.Draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewClientResponse(*client))
}

// Update handles PUT /clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload dto.ClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed client payload"})
		return
	}

	client, err := h.facade.UpdateClient(c.Request.Context(), id, payload.Draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClientResponse(*client))
}

// Delete handles DELETE /clients/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
