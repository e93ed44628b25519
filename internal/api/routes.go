package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/handlers"
	"github.com/jroosing/mailreply/internal/api/middleware"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/ratelimit"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/mailreply/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, limiter *ratelimit.Limiter, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Health stays public so load balancers need no key.
	api.GET("/health", h.Health)

	protected := api.Group("")
	if cfg != nil && cfg.API.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	protected.POST("/parse", middleware.RateLimit(limiter, h.RecordRateLimited), h.Parse)
	protected.GET("/history", h.History)
	protected.GET("/stats", h.Stats)
	protected.GET("/config", h.GetConfig)
}
