// Command events tails the activity stream written by the server and logs each
// event. It is an operator tool; the server never depends on it.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/core/config"
	"basegraph.app/taskhub/internal/queue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ServiceTypeEvents)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg)

	if !cfg.Events.Enabled() {
		slog.ErrorContext(ctx, "EVENTS_REDIS_URL is required")
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.Events.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}

	consumer, err := queue.NewRedisConsumer(ctx, redisClient, queue.ConsumerConfig{
		Stream:    cfg.Events.Stream,
		Group:     cfg.Events.Group,
		Consumer:  cfg.Events.Consumer,
		BatchSize: 50,
		Block:     5 * time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "tailing activity events",
		"stream", cfg.Events.Stream,
		"group", cfg.Events.Group,
		"consumer", cfg.Events.Consumer)

	err = consumer.Run(ctx, func(ctx context.Context, msg queue.Message) error {
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			RequestID:   msg.Event.RequestID,
			UserID:      msg.Event.UserID,
			WorkspaceID: msg.Event.WorkspaceID,
			TaskID:      msg.Event.TaskID,
		})
		slog.InfoContext(ctx, "activity", "event_type", msg.Event.Type, "message_id", msg.ID)
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "consumer stopped", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "shutdown complete")
}
