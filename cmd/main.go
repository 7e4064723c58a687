package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"healthtracker/database"
	"healthtracker/docs"
	"healthtracker/internal/auth"
	"healthtracker/internal/config"
	"healthtracker/internal/controllers"
	"healthtracker/internal/middleware"
	"healthtracker/internal/repository"
	"healthtracker/internal/utils"
	"healthtracker/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Rural Health Tracker API"
	docs.SwaggerInfo.Description = "REST API for the Rural Health Tracker: accounts, appointments, symptom logs and contact messages."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	appointmentRepo := repository.NewAppointmentRepository(database.DB)
	symptomRepo := repository.NewSymptomRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	if err := utils.EnsureDefaultAdmin(userRepo, hasher, cfg); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	authController := controllers.NewAuthController(userRepo, hasher, tokens)
	userController := controllers.NewUserController(userRepo)
	appointmentController := controllers.NewAppointmentController(appointmentRepo)
	symptomController := controllers.NewSymptomController(symptomRepo)
	contactController := controllers.NewContactController(contactRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.Default())

	requireAuth := middleware.RequireAuth(tokens, userRepo)
	requireAdmin := middleware.RequireAdmin()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Rural Health Tracker API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterUserRoutes(router, userController, requireAuth, requireAdmin)
	routes.RegisterAppointmentRoutes(router, appointmentController, requireAuth)
	routes.RegisterSymptomRoutes(router, symptomController, requireAuth)
	routes.RegisterContactRoutes(router, contactController, requireAuth, requireAdmin)
	routes.RegisterSwaggerRoutes(router)

	// Serve the single-page front end: real files from ./static, everything
	// else falls back to index.html so client-side routing works.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		path := filepath.Join("static", filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join("static", "index.html"))
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
