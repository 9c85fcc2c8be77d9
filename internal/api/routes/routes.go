package routes

import (
	"scrimhub-backend/internal/api/handlers"
	"scrimhub-backend/internal/api/middleware"
	"scrimhub-backend/internal/auth"
	"scrimhub-backend/internal/config"
	"scrimhub-backend/internal/repository"
	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewGameProfileRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	teamRequestRepo := repository.NewTeamRequestRepository(db)
	scrimRepo := repository.NewScrimRepository(db)
	scrimRequestRepo := repository.NewScrimRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	capacity := service.NewCapacityPolicy(membershipRepo, profileRepo)
	teamService := service.NewTeamService(db, teamRepo, membershipRepo, profileRepo, capacity, validator)
	teamRequestService := service.NewTeamRequestService(db, teamRepo, userRepo, profileRepo, teamRequestRepo, membershipRepo, notificationRepo, capacity, validator)
	scrimService := service.NewScrimService(db, scrimRepo, scrimRequestRepo, teamRepo, validator)
	scrimRequestService := service.NewScrimRequestService(db, scrimRequestRepo, scrimRepo, teamRepo, userRepo, notificationRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, membershipRepo, cfg.NotificationLimit)
	lfgService := service.NewLFGService(profileRepo, capacity)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	teamRequestHandler := handlers.NewTeamRequestHandler(teamRequestService)
	scrimHandler := handlers.NewScrimHandler(scrimService)
	scrimRequestHandler := handlers.NewScrimRequestHandler(scrimRequestService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	lfgHandler := handlers.NewLFGHandler(lfgService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListRecruitingTeams) // Optional game_id and rank_id parameters
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:slug", teamHandler.GetTeam)
			teams.PUT("/:slug", teamHandler.UpdateTeam)
			teams.DELETE("/:slug", teamHandler.DisbandTeam)
			teams.PATCH("/:slug/recruiting", teamHandler.SetRecruiting)
			teams.POST("/:slug/leave", teamHandler.LeaveTeam)
			teams.DELETE("/:slug/members/:membershipId", teamHandler.KickMember)
			teams.PATCH("/:slug/members/:membershipId/role", teamHandler.ChangeMemberRole)
		}

		// Team request routes
		teamRequests := v1.Group("/team-requests")
		{
			teamRequests.GET("", teamRequestHandler.ListPendingByTeam) // Requires team_id parameter
			teamRequests.POST("/invite", teamRequestHandler.Invite)
			teamRequests.POST("/join", teamRequestHandler.RequestToJoin)
			teamRequests.POST("/respond", teamRequestHandler.Respond)
		}

		// Scrim routes
		scrims := v1.Group("/scrims")
		{
			scrims.GET("", scrimHandler.ListOpenScrims) // Optional game_id parameter
			scrims.POST("", scrimHandler.CreateScrim)
			scrims.GET("/:id", scrimHandler.GetScrim)
			scrims.DELETE("/:id", scrimHandler.DisbandScrim)
			scrims.PATCH("/:id/code", scrimHandler.UpdateScrimCode)
			scrims.POST("/:id/leave", scrimHandler.LeaveScrim)
			scrims.GET("/:id/requests", scrimRequestHandler.ListPendingByScrim)
		}

		// Scrim request routes
		scrimRequests := v1.Group("/scrim-requests")
		{
			scrimRequests.POST("", scrimRequestHandler.Create)
			scrimRequests.POST("/respond", scrimRequestHandler.Respond)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListUnread)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// LFG routes
		lfg := v1.Group("/lfg")
		{
			lfg.GET("/players", lfgHandler.ListPlayers) // Optional game_id and rank_id parameters
			lfg.PATCH("/profiles/:profileId", lfgHandler.SetLookingForTeam)
		}
	}

	return router
}
