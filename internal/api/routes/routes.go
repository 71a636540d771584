package routes

import (
	"motion-pcs-backend/internal/api/handlers"
	"motion-pcs-backend/internal/api/middleware"
	"motion-pcs-backend/internal/auth"
	"motion-pcs-backend/internal/config"
	"motion-pcs-backend/internal/repository"
	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	scopeRepo := repository.NewScopeRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Auth
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(tokens)

	// Services
	authService := service.NewAuthService(userRepo, tokens, validate)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	projectService := service.NewProjectService(projectRepo)
	ticketService := service.NewTicketService(ticketRepo, scopeRepo, userRepo, validate)
	commentService := service.NewCommentService(commentRepo, scopeRepo, userRepo, validate)
	scopeService := service.NewScopeService(scopeRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	commentHandler := handlers.NewCommentHandler(commentService)
	scopeHandler := handlers.NewScopeHandler(scopeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// Authenticated API routes
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/me", userHandler.Me)
		api.GET("/engineers", userHandler.GetEngineers)
		api.GET("/clients", clientHandler.ListClients)
		api.GET("/projects", projectHandler.ListProjects)

		api.POST("/tickets", ticketHandler.CreateTicket)
		api.PUT("/tickets/:id", ticketHandler.UpdateTicket)
		api.PATCH("/tickets/:id/status", ticketHandler.UpdateTicketStatus)
		api.PUT("/tickets/:id/assignees", ticketHandler.AssignTicket)

		api.POST("/scopes/:id/comments", commentHandler.AddComment)
		api.POST("/scopes/:id/comments/toggle", scopeHandler.ToggleComments)
		api.PUT("/comments/:id", commentHandler.UpdateComment)

		api.GET("/notifications/unread", notificationHandler.GetUnread)
		api.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}

	return router
}
