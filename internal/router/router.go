package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taufanAli65/social-media-todo-api/internal/handlers"
	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/metrics"
	"github.com/taufanAli65/social-media-todo-api/internal/middleware"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

// Deps carries everything the route table needs; main wires it up.
type Deps struct {
	Auth     *handlers.AuthHandler
	Content  *handlers.ContentHandler
	Provider identity.Provider
	Store    store.Store
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}

	requireAuth := middleware.RequireAuth(deps.Provider, deps.Store)
	requireAdmin := middleware.RequireAdmin()

	r.GET("/health", handlers.HealthCheck)
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}
	r.GET("/ws/contents", requireAuth, requireAdmin, handlers.ContentFeed)

	auth := r.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
		auth.DELETE("/delete/:userID", requireAuth, requireAdmin, deps.Auth.DeleteUser)
	}

	content := r.Group("/content", requireAuth)
	{
		content.GET("", deps.Content.List)
		content.GET("/:contentID", deps.Content.GetByID)
		content.GET("/user/:userID", deps.Content.ListByUser)
		content.GET("/all/:status", requireAdmin, deps.Content.ListByStatus)

		content.POST("", requireAdmin, deps.Content.Create)
		content.POST("/assign", requireAdmin, deps.Content.Assign)
		content.PUT("/reassign", requireAdmin, deps.Content.Reassign)
		content.PUT("", deps.Content.UpdateStatus)
		content.DELETE("/:contentID", requireAdmin, deps.Content.Delete)
	}

	return r
}
