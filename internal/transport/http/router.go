package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/config"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/db"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/transport/http/handlers"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	// Initialize repositories
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)

	// Initialize services
	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		Logger:     cfg.Logger,
	})

	generationService := services.NewGenerationService(services.GenerationServiceConfig{
		Tasks: taskService,
		Clients: []ports.ProviderClient{
			services.NewOpenRouterClient(cfg.Config.AI, cfg.Logger),
			services.NewHuggingFaceClient(cfg.Config.AI, cfg.Logger),
		},
		Logger: cfg.Logger,
	})

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	generateHandler := handlers.NewGenerateHandler(generationService, cfg.Logger)

	// Task routes
	app.Post("/tasks", taskHandler.CreateTask)
	app.Get("/tasks", taskHandler.GetTasks)
	app.Get("/tasks/:id", taskHandler.GetTask)
	app.Patch("/tasks/:id", taskHandler.UpdateTask)
	app.Delete("/tasks/:id", taskHandler.DeleteTask)

	// AI generation route
	app.Post("/ai/generate", generateHandler.GenerateTasks)
}
