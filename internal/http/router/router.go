package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/handler"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

// ReadinessCheck reports whether a backing dependency is reachable.
type ReadinessCheck func(ctx context.Context) error

type RouterConfig struct {
	// Ready is keyed by dependency name; /ready fails when any check fails.
	Ready map[string]ReadinessCheck
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx := c.Request.Context()
		failed := gin.H{}
		for name, check := range cfg.Ready {
			if err := check(ctx); err != nil {
				slog.WarnContext(ctx, "readiness check failed", "dependency", name, "error", err)
				failed[name] = err.Error()
			}
		}
		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/schema/plan-config", handler.PlanConfigSchema)

		authed := v1.Group("")
		authed.Use(middleware.RequireActor())

		sessionHandler := handler.NewSessionHandler(services.Responses())
		nominationHandler := handler.NewNominationHandler(services.Nominations())

		SessionRouter(authed, sessionHandler)
		NominationRouter(authed, nominationHandler, sessionHandler)
	}
}
