// Package server exposes the extraction pipeline over HTTP for the
// browser-side callers (the userscripts' native-host analogue).
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/zakkhoyt/linkmark/config"
)

// SetupRouter creates and configures the gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/classify", handler.Classify)
		v1.POST("/extract", handler.Extract)
		v1.POST("/link", handler.Link)
		v1.GET("/image/parse", handler.ParseImage)
		v1.GET("/image/compose", handler.ComposeImage)
	}

	return router
}
