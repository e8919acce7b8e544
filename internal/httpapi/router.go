// internal/httpapi/router.go
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobboard-api/internal/applications"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/common/config"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/common/observability"
	"jobboard-api/internal/jobs"
	"jobboard-api/internal/models"
	"jobboard-api/internal/savedjobs"
	"jobboard-api/internal/search"
)

// Deps carries everything the router wires together. Search and Obs may
// be nil when the corresponding subsystem is disabled.
type Deps struct {
	Config       *config.Config
	Jobs         *jobs.Service
	Applications *applications.Service
	SavedJobs    *savedjobs.Service
	Auth         *auth.Service
	Search       *search.SearchIndex
	Obs          *observability.Observability
	Log          logger.Logger
}

// NewRouter builds the full route tree.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Metrics(deps.Obs))
	r.Use(corsMiddleware(deps.Config.Server.AllowedOrigins))

	r.GET("/health", healthHandler(deps.Config))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	jobsHandler := NewJobsHandler(deps.Jobs, deps.Search)
	appsHandler := NewApplicationsHandler(deps.Applications)
	savedHandler := NewSavedJobsHandler(deps.SavedJobs)
	authHandler := NewAuthHandler(deps.Auth)

	authed := RequireAuth(deps.Auth)

	api := r.Group("/api/v1")
	{
		api.GET("/jobs", jobsHandler.List)
		api.GET("/jobs/:id", jobsHandler.Get)
		api.GET("/jobs/:id/related", jobsHandler.Related)
		api.POST("/jobs", authed, RequireRole(models.RoleEmployer), jobsHandler.Create)

		employer := api.Group("/employer", authed, RequireRole(models.RoleEmployer))
		{
			employer.GET("/jobs", jobsHandler.ListOwn)
			employer.GET("/applications", appsHandler.ListForEmployer)
		}

		api.PATCH("/applications/:id/status", authed, RequireRole(models.RoleEmployer), appsHandler.UpdateStatus)
		api.GET("/applications", authed, RequireRole(models.RoleCandidate), appsHandler.ListOwn)
		api.POST("/applications", authed, RequireRole(models.RoleCandidate), appsHandler.Submit)

		saved := api.Group("/saved-jobs", authed, RequireRole(models.RoleCandidate))
		{
			saved.GET("", savedHandler.List)
			saved.GET("/:jobID", savedHandler.Check)
			saved.POST("", savedHandler.Save)
			saved.DELETE("/:jobID", savedHandler.Remove)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/signin", authHandler.Signin)
			authGroup.POST("/signout", authed, authHandler.Signout)
			authGroup.GET("/profile", authed, authHandler.Profile)
		}
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		})
	}
}
