package bootstrap

import (
	"log"
	"time"

	"chatbot-platform-be/internal/config"
	"chatbot-platform-be/internal/controller"
	"chatbot-platform-be/internal/pkg/logger"
	"chatbot-platform-be/internal/pkg/serverutils"
	"chatbot-platform-be/internal/pkg/token"
	"chatbot-platform-be/internal/repository/unitofwork"
	"chatbot-platform-be/internal/service"
	"chatbot-platform-be/pkg/filestore"
	"chatbot-platform-be/pkg/llm/openai"
	pkgNats "chatbot-platform-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	AuthController    controller.IAuthController
	ProjectController controller.IProjectController
	PromptController  controller.IPromptController
	ChatController    controller.IChatController
	FileController    controller.IFileController

	ErrorHandler  fiber.Handler
	HealthHandler fiber.Handler

	EventPublisher *pkgNats.Publisher
}

// healthHandler reports dependency state so a load balancer can tell a
// broken deploy from a slow one.
func healthHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx.Context()) != nil {
			dbStatus = "disconnected"
		}

		status := "ok"
		if dbStatus != "connected" {
			status = "degraded"
		}

		return ctx.JSON(fiber.Map{
			"status":            status,
			"database":          dbStatus,
			"openai_configured": cfg.OpenAI.APIKey != "",
		})
	}
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenManager := token.NewManager(cfg.Auth.JwtSecret, time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute)
	authMiddleware := serverutils.NewAuthMiddleware(tokenManager, uowFactory)

	// 2. AI Backends. A misconfigured key must fail startup, not the
	// first chat request.
	llmProvider, err := openai.NewOpenAIProvider(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: OpenAI (%s)", cfg.OpenAI.Model)

	fileStore, err := filestore.NewOpenAIStore(cfg.OpenAI.APIKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize file store: %v", err)
	}

	// 3. Event Bus. The publisher is optional; a nil publisher drops
	// events silently.
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 4. Services
	authService := service.NewAuthService(uowFactory, tokenManager, natsPub)
	projectService := service.NewProjectService(uowFactory, natsPub, sysLogger)
	promptService := service.NewPromptService(uowFactory)
	chatService := service.NewChatService(uowFactory, llmProvider, natsPub, sysLogger)
	fileService := service.NewFileService(uowFactory, fileStore)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService, authMiddleware),
		ProjectController: controller.NewProjectController(projectService, authMiddleware),
		PromptController:  controller.NewPromptController(promptService, authMiddleware),
		ChatController:    controller.NewChatController(chatService, authMiddleware),
		FileController:    controller.NewFileController(fileService, authMiddleware),

		ErrorHandler:  serverutils.ErrorHandlerMiddleware(sysLogger),
		HealthHandler: healthHandler(db, cfg),

		EventPublisher: natsPub,
	}
}
