package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio_backend/database"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedAdminUser(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call this directly against
// their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
		Bucket:   cfg.Storage.Bucket,
		KeyID:    cfg.Storage.KeyID,
		AppKey:   cfg.Storage.AppKey,
		Endpoint: cfg.Storage.Endpoint,
		Region:   cfg.Storage.Region,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	authGate := middleware.AuthMiddleware(serviceContainer.AuthService, cfg.Session.CookieName)
	routes.RegisterRoutes(ginRouter, appHandlers, authGate)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var mailer email.Mailer
	if cfg.Mail.SMTPHost != "" {
		mailer = email.NewSMTPMailer(email.Config{
			SMTPHost: cfg.Mail.SMTPHost,
			SMTPPort: cfg.Mail.SMTPPort,
			SMTPUser: cfg.Mail.SMTPUser,
			SMTPPass: cfg.Mail.SMTPPass,
			From:     cfg.Mail.From,
			To:       cfg.Mail.To,
		})
	} else {
		logger.Warn("SMTP not configured, contact form messages will be dropped")
		mailer = &MockMailer{}
	}

	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	clientRepo := repositories.NewClientRepository()
	projectRepo := repositories.NewProjectRepository()
	categoryRepo := repositories.NewCategoryRepository()
	singletonRepo := repositories.NewSingletonRepository()

	issuer := auth.NewTokenIssuer(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)

	uploadConfig := services.UploadConfig{
		MaxSize:           cfg.Upload.MaxSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		AllowedTypes:      cfg.Upload.AllowedTypes,
	}

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, sessionRepo, issuer),
		PortfolioService: services.NewPortfolioService(portfolioRepo),
		ClientService:    services.NewClientService(clientRepo),
		ProjectService:   services.NewProjectService(projectRepo),
		CategoryService:  services.NewCategoryService(categoryRepo),
		ContentService:   services.NewContentService(singletonRepo),
		UploadService:    services.NewUploadService(storageInstance, uploadConfig),
		ContactService:   services.NewContactService(mailer),
	}
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	cookie := handlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		Domain: cfg.Session.CookieDomain,
		MaxAge: cfg.Session.TTLHours * 3600,
	}

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, svc.AuthService, cookie),
		PortfolioHandler: handlers.NewPortfolioHandler(baseHandler, svc.PortfolioService),
		ClientHandler:    handlers.NewClientHandler(baseHandler, svc.ClientService),
		ProjectHandler:   handlers.NewProjectHandler(baseHandler, svc.ProjectService),
		CategoryHandler:  handlers.NewCategoryHandler(baseHandler, svc.CategoryService),
		ContentHandler:   handlers.NewContentHandler(baseHandler, svc.ContentService),
		UploadHandler:    handlers.NewUploadHandler(baseHandler, svc.UploadService),
		ContactHandler:   handlers.NewContactHandler(baseHandler, svc.ContactService),
		HealthHandler:    handlers.NewHealthHandler(),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedAdminUser ensures the single admin account exists, hashing the
// configured password on first boot. Existing rows are left untouched.
func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	result := db.Where("username = ?", cfg.Admin.Username).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", cfg.Admin.Username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	if err := auth.ValidatePassword(cfg.Admin.Password); err != nil {
		return fmt.Errorf("admin password rejected: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created admin user", "username", cfg.Admin.Username)
	return nil
}
