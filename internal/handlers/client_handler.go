package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	payload, ok := h.BindPayload(c)
	if !ok {
		return
	}

	client, err := h.clientService.Create(h.GetDB(c), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Update(c *gin.Context) {
	payload, ok := h.BindPayload(c)
	if !ok {
		return
	}

	client, err := h.clientService.Update(h.GetDB(c), c.Param("id"), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
