package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anshulj07/sciquel-test/internal/middleware"
)

// NewRouter creates the Gin engine with middleware and all routes registered.
func NewRouter(comments *CommentHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Health and metrics endpoints
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/live", health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/comments", comments.ListComments)
		// Panics while handling a submission answer 400 like any other format error
		api.POST("/comments", middleware.InvalidFormatRecovery(), comments.CreateComment)
	}

	return router
}
