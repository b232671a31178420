package routes

import (
	"portfolio_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP surface. Admin reads are open by
// design (the original tool behaved the same way); every mutating admin
// route goes through the auth middleware passed in as authGate.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, authGate gin.HandlerFunc) {
	router.GET("/health", h.HealthHandler.Check)

	api := router.Group("/api/v1")

	// Public, read-only surface
	{
		h.ContentHandler.RegisterPublicRoutes(api)

		api.GET("/portfolio", h.PortfolioHandler.List)
		api.GET("/portfolio/:id", h.PortfolioHandler.Get)
		api.GET("/projects", h.ProjectHandler.List)
		api.GET("/projects/:id", h.ProjectHandler.Get)
		api.GET("/clients", h.ClientHandler.List)
		api.GET("/categories", h.CategoryHandler.List)

		api.POST("/contact", h.ContactHandler.Submit)
	}

	admin := api.Group("/admin")
	gated := admin.Group("", authGate)

	// Session endpoints
	admin.POST("/login", h.AuthHandler.Login)
	admin.GET("/verify", h.AuthHandler.Verify)
	admin.POST("/logout", h.AuthHandler.Logout)

	// Singleton documents: open reads, gated writes
	h.ContentHandler.RegisterAdminRoutes(admin, gated)

	// Entity CRUD: open reads, gated mutations
	registerEntityRoutes(admin, gated, "/portfolio", entityHandlers{
		list:   h.PortfolioHandler.List,
		get:    h.PortfolioHandler.Get,
		create: h.PortfolioHandler.Create,
		update: h.PortfolioHandler.Update,
		delete: h.PortfolioHandler.Delete,
	})
	registerEntityRoutes(admin, gated, "/clients", entityHandlers{
		list:   h.ClientHandler.List,
		get:    h.ClientHandler.Get,
		create: h.ClientHandler.Create,
		update: h.ClientHandler.Update,
		delete: h.ClientHandler.Delete,
	})
	registerEntityRoutes(admin, gated, "/projects", entityHandlers{
		list:   h.ProjectHandler.List,
		get:    h.ProjectHandler.Get,
		create: h.ProjectHandler.Create,
		update: h.ProjectHandler.Update,
		delete: h.ProjectHandler.Delete,
	})
	registerEntityRoutes(admin, gated, "/categories", entityHandlers{
		list:   h.CategoryHandler.List,
		get:    h.CategoryHandler.Get,
		create: h.CategoryHandler.Create,
		update: h.CategoryHandler.Update,
		delete: h.CategoryHandler.Delete,
	})

	// Uploads: all gated
	gated.POST("/upload/single", h.UploadHandler.UploadSingle)
	gated.POST("/upload/multiple", h.UploadHandler.UploadMultiple)
	gated.DELETE("/upload/:filename", h.UploadHandler.Delete)
}

type entityHandlers struct {
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	create gin.HandlerFunc
	update gin.HandlerFunc
	delete gin.HandlerFunc
}

func registerEntityRoutes(read, write *gin.RouterGroup, path string, h entityHandlers) {
	read.GET(path, h.list)
	read.GET(path+"/:id", h.get)
	write.POST(path, h.create)
	write.PUT(path+"/:id", h.update)
	write.DELETE(path+"/:id", h.delete)
}
