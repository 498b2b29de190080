package app

import (
	"fmt"
	"time"

	"mentorlink_backend/database"
	"mentorlink_backend/internal/auth"
	"mentorlink_backend/internal/cache"
	"mentorlink_backend/internal/config"
	"mentorlink_backend/internal/email"
	"mentorlink_backend/internal/handlers"
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/middleware"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/routes"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.Clerk.JWTSecret)

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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer, cfg)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" && cfg.Email.FromEmail != "" {
		smtpProvider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Warn("SMTP provider misconfigured, using mock email provider", "error", err)
			emailService = &MockEmailProvider{}
		} else {
			emailService = smtpProvider
		}
	} else {
		logger.Warn("Email is not configured. Using mock email provider.")
		emailService = &MockEmailProvider{}
	}

	// Redis опционален: nil кэш означает прямой расчет на каждый запрос
	matchCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	cacheTTL := time.Duration(cfg.Redis.MatchTTL) * time.Second

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	matchRepo := repositories.NewMatchRepository()
	notificationRepo := repositories.NewNotificationRepository()

	// --- Инициализация сервисов ---
	profileService := services.NewProfileService(userRepo, profileRepo, matchCache)
	matchingService := services.NewMatchingService(profileRepo, matchCache, cacheTTL)
	matchService := services.NewMatchService(matchRepo, profileRepo, userRepo, notificationRepo, emailService)
	webhookService := services.NewWebhookService(profileService)
	notificationService := services.NewNotificationService(notificationRepo)

	return &services.ServiceContainer{
		ProfileService:      profileService,
		MatchingService:     matchingService,
		MatchService:        matchService,
		WebhookService:      webhookService,
		NotificationService: notificationService,
	}
}

func initializeHandlers(services *services.ServiceContainer, cfg *config.Config) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	webhookHandler, err := handlers.NewWebhookHandler(baseHandler, services.WebhookService, cfg.Clerk.WebhookSecret)
	if err != nil {
		logger.Fatal("Failed to initialize webhook verifier", "error", err)
	}

	return &handlers.AppHandlers{
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		MatchingHandler:     handlers.NewMatchingHandler(baseHandler, services.MatchingService),
		MatchHandler:        handlers.NewMatchHandler(baseHandler, services.MatchService),
		WebhookHandler:      webhookHandler,
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
