package handlers

import (
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the singleton content documents. Admin reads return
// the full document; public reads may be projected down (page-content only
// exposes the contact fields).
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) getDocument(kind models.SingletonKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.contentService.GetDocument(h.GetDB(c), kind)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func (h *ContentHandler) putDocument(kind models.SingletonKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := h.BindPayload(c)
		if !ok {
			return
		}

		doc, err := h.contentService.UpdateDocument(h.GetDB(c), kind, payload)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func (h *ContentHandler) GetPublicPageContent(c *gin.Context) {
	doc, err := h.contentService.GetPublicPageContent(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) GetAnalytics(c *gin.Context) {
	settings, err := h.contentService.GetAnalytics(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) UpdateAnalytics(c *gin.Context) {
	payload, ok := h.BindPayload(c)
	if !ok {
		return
	}

	settings, err := h.contentService.UpdateAnalytics(h.GetDB(c), payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// singletonRoutes maps URL segments to document kinds.
var singletonRoutes = []struct {
	Path string
	Kind models.SingletonKind
}{
	{"site-settings", models.KindSiteSettings},
	{"page-content", models.KindPageContent},
	{"skills", models.KindSkills},
	{"about", models.KindAbout},
	{"navigation", models.KindNavigation},
	{"footer", models.KindFooter},
}

// RegisterAdminRoutes wires full-document reads on the open admin group and
// writes on the auth-gated group.
func (h *ContentHandler) RegisterAdminRoutes(read, write *gin.RouterGroup) {
	for _, route := range singletonRoutes {
		read.GET("/"+route.Path, h.getDocument(route.Kind))
		write.PUT("/"+route.Path, h.putDocument(route.Kind))
	}
	read.GET("/analytics", h.GetAnalytics)
	write.PUT("/analytics", h.UpdateAnalytics)
}

// RegisterPublicRoutes wires read-only projections for visitors.
func (h *ContentHandler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/site-settings", h.getDocument(models.KindSiteSettings))
	public.GET("/page-content", h.GetPublicPageContent)
	public.GET("/navigation", h.getDocument(models.KindNavigation))
	public.GET("/footer", h.getDocument(models.KindFooter))
	public.GET("/skills", h.getDocument(models.KindSkills))
	public.GET("/about", h.getDocument(models.KindAbout))
	public.GET("/analytics", h.GetAnalytics)
}
