package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, task Task) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, task Task) error {
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: taskValues(task),
	}).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", task.TaskType, err)
	}

	p.logger.InfoContext(ctx, "enqueued task",
		"task_type", task.TaskType,
		"participant_assessment_id", task.ParticipantAssessmentID,
		"reason", task.Reason)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

// NoopProducer drops tasks. Used when no queue is configured.
type NoopProducer struct{}

func (NoopProducer) Enqueue(ctx context.Context, task Task) error {
	slog.DebugContext(ctx, "queue disabled, dropping task", "task_type", task.TaskType)
	return nil
}

func (NoopProducer) Close() error {
	return nil
}
