package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobdeck/jobdeck-api/internal/auth"
	"github.com/jobdeck/jobdeck-api/internal/automation"
	"github.com/jobdeck/jobdeck-api/internal/cache"
	"github.com/jobdeck/jobdeck-api/internal/handlers"
	"github.com/jobdeck/jobdeck-api/internal/middleware"
	"github.com/jobdeck/jobdeck-api/internal/services"
	"gorm.io/gorm"
)

// Deps carries everything the router needs. Cache may be nil (listings
// then read straight from the store).
type Deps struct {
	DB            *gorm.DB
	Cache         cache.Store
	SessionSecret []byte
	Trigger       automation.Trigger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))
	r.Use(middleware.RequestID())

	jobService := services.NewJobService(d.DB, d.Cache)
	profileService := services.NewProfileService(d.DB)
	applicationService := services.NewApplicationService(d.DB, d.Trigger)

	jobHandler := handlers.NewJobHandler(jobService)
	profileHandler := handlers.NewProfileHandler(profileService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authed := api.Group("", auth.Middleware(d.DB, d.SessionSecret))
		{
			authed.GET("/jobs", jobHandler.ListJobs)

			authed.GET("/profile", profileHandler.GetProfile)
			authed.PUT("/profile", profileHandler.UpdateProfile)
			authed.GET("/profile/resume", profileHandler.DownloadResume)

			authed.POST("/applications", applicationHandler.CreateApplication)
			authed.GET("/applications", applicationHandler.ListApplications)
		}
	}
	return r
}
