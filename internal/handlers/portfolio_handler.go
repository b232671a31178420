package handlers

import (
	"net/http"

	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	payload, ok := h.BindPayload(c)
	if !ok {
		return
	}

	item, warnings, err := h.portfolioService.Create(h.GetDB(c), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "warnings": warnings})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolioService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	if category := c.Query("category"); category != "" {
		items, err := h.portfolioService.ListByCategory(db, category)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.portfolioService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	payload, ok := h.BindPayload(c)
	if !ok {
		return
	}

	item, warnings, err := h.portfolioService.Update(h.GetDB(c), c.Param("id"), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item, "warnings": warnings})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolioService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
