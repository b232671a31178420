package services

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	AuthService      AuthService
	PortfolioService PortfolioService
	ClientService    ClientService
	ProjectService   ProjectService
	CategoryService  CategoryService
	ContentService   ContentService
	UploadService    UploadService
	ContactService   ContactService
}
