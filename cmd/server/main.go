package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rwidjojo/freelancer-directory-api/internal/config"
	"github.com/rwidjojo/freelancer-directory-api/internal/database"
	"github.com/rwidjojo/freelancer-directory-api/internal/handlers"
	"github.com/rwidjojo/freelancer-directory-api/internal/metrics"
	"github.com/rwidjojo/freelancer-directory-api/internal/middleware"
	"github.com/rwidjojo/freelancer-directory-api/internal/repository"
	"github.com/rwidjojo/freelancer-directory-api/internal/services"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Wire repositories, services and handlers
	skillService := services.NewMasterService(repository.NewSkillsetRepository(db), "skillset")
	hobbyService := services.NewMasterService(repository.NewHobbyRepository(db), "hobby")
	freelancerService := services.NewFreelancerService(repository.NewFreelancerRepository(db), skillService, hobbyService)

	freelancerHandler := handlers.NewFreelancerHandler(freelancerService)
	skillHandler := handlers.NewMasterHandler(skillService)
	hobbyHandler := handlers.NewMasterHandler(hobbyService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.GinMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Freelancer Directory API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api/v1")
	{
		freelancers := api.Group("/freelancers")
		{
			freelancers.GET("", freelancerHandler.List)
			freelancers.POST("", freelancerHandler.Create)
			freelancers.GET("/:id", freelancerHandler.Get)
			freelancers.PUT("/:id", freelancerHandler.Update)
			freelancers.PATCH("/:id", freelancerHandler.Patch)
			freelancers.DELETE("/:id", freelancerHandler.Delete)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.POST("", skillHandler.Create)
			skills.PUT("/:id", skillHandler.Rename)
			skills.DELETE("/:id", skillHandler.Delete)
		}

		hobbies := api.Group("/hobbies")
		{
			hobbies.GET("", hobbyHandler.List)
			hobbies.POST("", hobbyHandler.Create)
			hobbies.PUT("/:id", hobbyHandler.Rename)
			hobbies.DELETE("/:id", hobbyHandler.Delete)
		}
	}

	// Static frontend
	r.Static("/ui", cfg.StaticDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
