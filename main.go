package main

import (
	"context"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"REDIS_URL",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
}

func setupRouter(cfg config.Config, auth *handler.AuthHandler, focus *handler.FocusSessionHandler,
	meetings *handler.MeetingHandler, prefs *handler.PreferencesHandler, profile *handler.ProfileHandler,
	stats *handler.StatsHandler, twoFactor *handler.TwoFactorHandler, admin *handler.AdminHandler,
	tokens *services.TokenManager, blacklist *services.TokenBlacklist) *gin.Engine {

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.Server.MaxRequestSize))

	router.GET("/health", func(c *gin.Context) {
		utils.Success(c, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	public := router.Group("/api")
	{
		// Logout is deliberately unauthenticated: it must return 200 even with
		// a missing, expired or revoked token so clients can always clear
		// their local state.
		public.POST("/auth/logout", auth.Logout)

		authGroup := public.Group("/auth")
		authGroup.Use(middleware.RateLimitMiddleware(limiter))
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
			authGroup.POST("/refresh", auth.Refresh)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens, blacklist))
	{
		sessions := protected.Group("/sessions")
		{
			sessions.GET("", focus.List)
			sessions.POST("", focus.Create)
			sessions.GET("/:id", focus.Get)
			sessions.POST("/:id/status", focus.UpdateStatus)
		}

		meetingsGroup := protected.Group("/meetings")
		{
			meetingsGroup.GET("", meetings.List)
			meetingsGroup.POST("", meetings.Create)
			meetingsGroup.GET("/upcoming", meetings.Upcoming)
			meetingsGroup.GET("/:id", meetings.Get)
			meetingsGroup.PUT("/:id", meetings.Update)
			meetingsGroup.DELETE("/:id", meetings.Delete)
		}

		users := protected.Group("/users")
		{
			users.GET("/profile", profile.Get)
			users.PUT("/profile", profile.Update)
			users.GET("/preferences", prefs.Get)
			users.PUT("/preferences", prefs.Update)
			users.GET("/stats", stats.Get)
			users.POST("/2fa/setup", twoFactor.Setup)
			users.POST("/2fa/enable", twoFactor.Enable)
			users.POST("/2fa/disable", twoFactor.Disable)
		}

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin(cfg.Auth.AdminAccessKey))
		{
			adminGroup.GET("/users", admin.ListUsers)
			adminGroup.DELETE("/users", admin.DeleteUser)
		}
	}

	return router
}

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, err := cfg.Database.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Database.DatabaseName)

	tokens := services.NewTokenManager(cfg.Auth)

	blacklist, err := services.NewTokenBlacklist(cfg.Redis.URL, tokens)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer blacklist.Close()

	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewFocusSessionRepo(db)
	meetingRepo := repository.NewMeetingRepo(db)
	prefsRepo := repository.NewPreferencesRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	statsService := &usecase.StatsService{Stats: statsRepo}
	userService := &usecase.UserService{
		Users:    userRepo,
		Prefs:    prefsRepo,
		Stats:    statsRepo,
		Sessions: sessionRepo,
		Meetings: meetingRepo,
	}
	focusService := &usecase.FocusService{Sessions: sessionRepo, Stats: statsService}
	meetingService := &usecase.MeetingService{Meetings: meetingRepo}
	prefsService := &usecase.PreferencesService{Prefs: prefsRepo}

	router := setupRouter(cfg,
		handler.NewAuthHandler(userService, tokens, blacklist),
		handler.NewFocusSessionHandler(focusService),
		handler.NewMeetingHandler(meetingService),
		handler.NewPreferencesHandler(prefsService),
		handler.NewProfileHandler(userService),
		handler.NewStatsHandler(statsService),
		handler.NewTwoFactorHandler(userService, cfg.Auth.Issuer),
		handler.NewAdminHandler(userService),
		tokens, blacklist)

	utils.StartSystemMetricsCollector(15 * time.Second)

	serverAddr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
