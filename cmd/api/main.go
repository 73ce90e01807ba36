package main

import (
	"log"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/config"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/database"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/handlers"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	candidateService := services.NewCandidateService(db)
	dashboardService := services.NewDashboardService(db)

	// 4. Auth Service Client
	authClient := auth.NewClient(cfg.AuthServiceURL)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	r.GET("/health", handlers.HealthCheck)

	admin := r.Group("/admin", auth.RequireRole(authClient, "admin"))
	{
		admin.POST("/add-job", jobHandler.CreateJob)
		admin.POST("/add-jobs-bulk", jobHandler.BulkCreateJobs)
		admin.GET("/jobs", jobHandler.ListJobs)
		admin.PUT("/jobs/:job_id", jobHandler.UpdateJob)
		admin.PUT("/jobs/:job_id/allocate", jobHandler.AllocateJob)
		admin.GET("/users", jobHandler.ListHRUsers)
		admin.GET("/dashboard", dashboardHandler.AdminDashboard)
		admin.GET("/candidates", candidateHandler.ListAdminCandidates)
		admin.GET("/candidates/export", candidateHandler.ExportCandidates)
	}

	hr := r.Group("/hr", auth.RequireRole(authClient, "hr"))
	{
		hr.GET("/jobs", jobHandler.ListHRJobs)
		hr.PUT("/jobs/:job_id/status", jobHandler.UpdateJobStatus)
		hr.GET("/candidates", candidateHandler.ListHRCandidates)
		hr.GET("/candidates/:job_id", candidateHandler.ListJobCandidates)
		hr.GET("/dashboard", dashboardHandler.HRDashboard)
	}

	authed := r.Group("/", auth.RequireRole(authClient))
	{
		authed.GET("/jobs/:job_id", jobHandler.GetJob)
		authed.GET("/candidates", candidateHandler.ListCandidates)
		authed.POST("/candidates", candidateHandler.CreateCandidate)
		authed.PUT("/candidates/:id", candidateHandler.UpdateCandidate)
		authed.PUT("/candidates/:id/status", candidateHandler.UpdateCandidateStatus)
		authed.GET("/application-history/:candidate_id", candidateHandler.ApplicationHistory)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
