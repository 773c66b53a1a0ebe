package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/taskchat_backend/internal/config"
	"github.com/locvowork/taskchat_backend/internal/handler"
	"github.com/locvowork/taskchat_backend/internal/logger"
	"github.com/locvowork/taskchat_backend/internal/service"
	"github.com/locvowork/taskchat_backend/internal/validation"
	"github.com/locvowork/taskchat_backend/pkg/firebase"
)

type App struct {
	Echo  *echo.Echo
	Store *firebase.Client
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize Firebase clients (Firestore + Realtime Database)
	store, err := firebase.NewClient(ctx, firebase.Config{
		CredentialsFile: config.DefaultEnvConfig.FIREBASE_CREDENTIALS_FILE,
		DatabaseURL:     config.DefaultEnvConfig.FIREBASE_DATABASE_URL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize firebase client: %w", err)
	}
	a.Store = store

	// Initialize dependencies
	taskSvc := service.NewTaskService(store)
	chatSvc := service.NewChatService(store)
	taskHandler := handler.NewTaskHandler(taskSvc)
	chatHandler := handler.NewChatHandler(chatSvc)

	a.Echo.Validator = validation.New()

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(taskHandler, chatHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := logger.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	}))
}

func (a *App) RegisterRoutes(taskHandler *handler.TaskHandler, chatHandler *handler.ChatHandler) {
	a.Echo.POST("/to-do-list", taskHandler.CreateTaskHandler)
	a.Echo.PUT("/todo/:id", taskHandler.UpdateTaskHandler)
	a.Echo.GET("/list", taskHandler.ListTasksHandler)
	a.Echo.DELETE("/list/:id", taskHandler.DeleteTaskHandler)
	a.Echo.GET("/list/export", taskHandler.ExportTasksHandler)

	a.Echo.POST("/chat", chatHandler.PostMessageHandler)
	a.Echo.GET("/chats", chatHandler.ListMessagesHandler)
}

func (a *App) Run() error {
	defer a.Store.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
