package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	PortfolioHandler *PortfolioHandler
	ClientHandler    *ClientHandler
	ProjectHandler   *ProjectHandler
	CategoryHandler  *CategoryHandler
	ContentHandler   *ContentHandler
	UploadHandler    *UploadHandler
	ContactHandler   *ContactHandler
	HealthHandler    *HealthHandler
}
