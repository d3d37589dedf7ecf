package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/id"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/Brendin-DP/IMD-accelerator-sub000/common/otel"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/notify"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "assessment worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Queue.Group,
		"consumer_name", cfg.Queue.Consumer,
		"reports_enabled", cfg.Reports.Enabled(),
		"mailer_enabled", cfg.Mailer.Enabled())

	if err := id.Init(id.NodeWorker); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
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
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Queue.Stream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:    cfg.Queue.Stream,
		Group:     cfg.Queue.Group,
		Consumer:  cfg.Queue.Consumer,
		BatchSize: cfg.Queue.BatchSize,
		Block:     cfg.Queue.BlockInterval,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())

	w := worker.New(worker.Config{
		Consumer:          consumer,
		Reports:           stores.ParticipantAssessments(),
		ExternalReviewers: stores.ExternalReviewers(),
		Regenerator:       notify.NewReportRegenerator(cfg.Reports, nil),
		Mailer:            notify.NewMailer(cfg.Mailer, nil),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Run(ctx)
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
   _   ___ ___ ___ ___ ___ __  __ ___ _  _ _____  __      _____  ___ _  _____ ___
  /_\ / __/ __| __/ __/ __|  \/  | __| \| |_   _| \ \    / / _ \| _ \ |/ / __| _ \
 / _ \\__ \__ \ _|\__ \__ \ |\/| | _|| .' | | |    \ \/\/ / (_) |   / ' <| _||   /
/_/ \_\___/___/___|___/___/_|  |_|___|_|\_| |_|     \_/\_/ \___/|_|_\_|\_\___|_|_\
`
