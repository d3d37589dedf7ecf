package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/otel"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	httprouter "github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/router"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/nomination"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "assessment engine starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(id.NodeServer); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	quota, err := nomination.NewQuotaPolicy(cfg.Nominations.QuotaRule)
	if err != nil {
		slog.ErrorContext(ctx, "invalid nomination quota rule", "error", err, "rule", cfg.Nominations.QuotaRule)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Queue.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Queue.Stream)

	producer := queue.NewRedisProducer(redisClient, cfg.Queue.Stream, slog.Default())
	defer producer.Close()

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		producer,
		quota,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, httprouter.RouterConfig{
		Ready: map[string]httprouter.ReadinessCheck{
			"postgres": database.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, routerCfg httprouter.RouterConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, routerCfg)

	return router
}

const banner = `
   _   ___ ___ ___ ___ ___ __  __ ___ _  _ _____   ___ ___ _____   _____ ___
  /_\ / __/ __| __/ __/ __|  \/  | __| \| |_   _| / __| __| _ \ \ / / __| _ \
 / _ \\__ \__ \ _|\__ \__ \ |\/| | _|| .' | | |   \__ \ _||   /\ V /| _||   /
/_/ \_\___/___/___|___/___/_|  |_|___|_|\_| |_|   |___/___|_|_\ \_/ |___|_|_\
`
