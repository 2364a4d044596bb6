package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pairlab/pairtinder/internal/handlers"
	"github.com/pairlab/pairtinder/internal/middleware"
	"github.com/pairlab/pairtinder/internal/repositories"
	"github.com/pairlab/pairtinder/internal/services"
	"github.com/pairlab/pairtinder/pkg/config"
	"github.com/pairlab/pairtinder/pkg/database"
	"github.com/pairlab/pairtinder/pkg/logger"
)

func main() {
	logger.Init()

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)
	tagRepo := repositories.NewTagRepository(database.DB)
	matchRepo := repositories.NewMatchPreferenceRepository(database.DB)

	userService := services.NewUserService(userRepo, projectRepo)
	projectService := services.NewProjectService(projectRepo, userRepo, tagRepo,
		config.AppConfig.Pagination.DefaultPageSize, config.AppConfig.Pagination.MaxPageSize)
	matchService := services.NewMatchService(matchRepo, userRepo, projectRepo)
	exportService := services.NewExportService(projectRepo, userRepo, tagRepo, matchRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	setupRoutes(router, userService, projectService, matchService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, userService *services.UserService, projectService *services.ProjectService,
	matchService *services.MatchService, exportService *services.ExportService) {
	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, exportService)
	matchHandler := handlers.NewMatchHandler(matchService)
	healthHandler := handlers.NewHealthHandler()

	// User routes
	users := router.Group("/users")
	{
		users.POST("/", userHandler.CreateUser)
		users.GET("/:user_id", userHandler.GetUser)
		users.GET("/:user_id/matches", matchHandler.ListUserMatches)
	}

	// Project routes
	projects := router.Group("/projects")
	{
		projects.POST("/", projectHandler.CreateProject)
		projects.GET("/", projectHandler.ListProjects)
		projects.GET("/:project_id", projectHandler.GetProject)
		projects.DELETE("/:project_id", projectHandler.DeleteProject)
		projects.POST("/:project_id/tags", projectHandler.AddProjectTag)
	}

	// Match routes
	router.POST("/match/", matchHandler.CreateMatch)

	// Operator export
	router.GET("/export/projects", projectHandler.ExportProjects)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
