// Package server composes the HTTP middleware chain and routes.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comments-api/internal/handler"
	"comments-api/internal/middleware"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Comments *handler.CommentHandler
	Health   *handler.HealthHandler
	Verifier middleware.TokenVerifier

	// AccessLog enables gin's request logger.
	AccessLog bool
}

// NewRouter builds the gin engine serving the comments API.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(handler.Recovered))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if deps.AccessLog {
		router.Use(gin.Logger())
	}

	// Health and metrics endpoints
	router.GET("/health", deps.Health.Health)
	router.GET("/ready", deps.Health.Ready)
	router.GET("/live", deps.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	comments := router.Group("/api/comments")
	{
		comments.GET("", deps.Comments.ListComments)
		comments.POST("", middleware.Auth(deps.Verifier), deps.Comments.CreateComment)
	}

	return router
}
