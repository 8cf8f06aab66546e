package main

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	api := router.Group("/api")
	api.GET("/health", healthCheckHandler(c))
	c.AuthHandler.RegisterRoutes(api)

	catalog := api.Group("", middleware.Authenticate(c.JWTManager))
	adminOnly := middleware.RequireRole(shared.RoleAdmin, shared.AdminDeniedMessage)
	{
		c.BookHandler.RegisterRoutes(catalog, adminOnly)
		c.AuthorHandler.RegisterRoutes(catalog, adminOnly)
	}

	return router
}

// healthCheckHandler reports database and cache status; 503 when either is
// down.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := gin.H{"status": "ok"}
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus["status"] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		} else if stats, err := appCtx.DB.Stats(); err == nil {
			dbStatus["pool"] = stats
		}

		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
			status = http.StatusServiceUnavailable
		}

		if status != http.StatusOK {
			health["status"] = "degraded"
		}
		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		}

		c.JSON(status, health)
	}
}
