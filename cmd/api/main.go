package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/config"
	"github.com/skillconnect/skillconnect-backend/internal/database"
	"github.com/skillconnect/skillconnect-backend/internal/handlers"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/internal/services"
	"github.com/skillconnect/skillconnect-backend/internal/storage"
	"github.com/skillconnect/skillconnect-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	auth.Init(cfg.JWTSecret)

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	store, err := storage.NewStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatal("failed to initialize media store: ", err)
	}

	llmService, err := services.NewLLMService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("failed to create Gemini client: ", err)
	}

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	reviewService := services.NewReviewService(db)
	notificationService := services.NewNotificationService(db)
	profileService := services.NewProfileService(db)
	testimonialService := services.NewTestimonialService(db)
	chatbotService := services.NewChatbotService(db, llmService)
	resumeAnalyzer := services.NewResumeAnalyzer(applicationService, store, llmService)

	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService, store)
	applicationHandler := handlers.NewApplicationHandler(applicationService, resumeAnalyzer, store)
	profileHandler := handlers.NewProfileHandler(profileService, reviewService, store)
	reviewHandler := handlers.NewReviewHandler(reviewService, userService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService, store)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, userService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.Static("/media", store.Dir())

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Public endpoints
		api.POST("/auth/register/", authHandler.Register)
		api.POST("/auth/login/", authHandler.Login)
		api.GET("/skills/", jobHandler.Skills)
		api.GET("/companies/", profileHandler.Companies)
		api.GET("/top-freelancers/", profileHandler.TopFreelancers)
		api.GET("/testimonials/", testimonialHandler.List)

		authed := api.Group("", auth.Middleware())
		{
			authed.GET("/auth/me/", authHandler.Me)

			recruiter := authed.Group("", auth.RequireRole(models.RoleRecruiter))
			{
				recruiter.POST("/job/create/", jobHandler.Create)
				recruiter.GET("/job/my/", jobHandler.Mine)
				recruiter.DELETE("/job/:id/delete/", jobHandler.Delete)
				recruiter.PATCH("/job/:id/edit/", jobHandler.Update)
				recruiter.GET("/application/recruiter/", applicationHandler.ForMyJobs)
				recruiter.PATCH("/application/:id/status/", applicationHandler.UpdateStatus)
				recruiter.POST("/application/:id/analyze-resume/", applicationHandler.AnalyzeResume)
				recruiter.GET("/profile/recruiter/me/", profileHandler.GetRecruiterMe)
				recruiter.PATCH("/profile/recruiter/me/", profileHandler.UpdateRecruiterMe)
			}

			freelancer := authed.Group("", auth.RequireRole(models.RoleFreelancer))
			{
				freelancer.GET("/job/", jobHandler.List)
				freelancer.GET("/job/recommendations/", jobHandler.Recommendations)
				freelancer.POST("/application/apply/", applicationHandler.Apply)
				freelancer.GET("/application/my/", applicationHandler.Mine)
				freelancer.GET("/profile/freelancer/me/", profileHandler.GetFreelancerMe)
				freelancer.PATCH("/profile/freelancer/me/", profileHandler.UpdateFreelancerMe)
			}

			authed.GET("/job/:id/", jobHandler.Detail)
			authed.GET("/notifications/", notificationHandler.List)
			authed.PATCH("/notifications/:id/read/", notificationHandler.MarkRead)
			authed.POST("/reviews/", reviewHandler.Create)
			authed.GET("/user/:id/reviews/", reviewHandler.ListForUser)
			authed.POST("/testimonials/submit/", testimonialHandler.Submit)
			authed.POST("/chatbot/", chatbotHandler.Chat)
		}
	}

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start: ", err)
	}
}
