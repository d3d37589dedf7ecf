package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Brendin-DP/IMD-accelerator-sub000/common/logger"
	"github.com/redis/go-redis/v9"
)

type ConsumerConfig struct {
	Stream    string        // Redis stream name
	Group     string        // Redis consumer group name
	Consumer  string        // Redis consumer name
	BatchSize int64         // Number of messages to read per batch
	Block     time.Duration // How long to block/poll for new messages
}

type Message struct {
	ID   string
	Task Task
	Raw  redis.XMessage
}

type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	consumer := &RedisConsumer{
		client: client,
		cfg:    cfg,
	}

	if err := consumer.ensureGroup(context.Background()); err != nil { //nolint:contextcheck
		return nil, err
	}

	return consumer, nil
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	// "$" skips whatever was written before the group existed; tasks are
	// best-effort and stale ones are not worth replaying.
	if err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "$").Err(); err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "engine.queue.consumer",
	})

	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    c.cfg.BatchSize,
		Block:    c.cfg.Block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("reading from stream: %w", err)
	}

	var messages []Message
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			parsed, parseErr := ParseMessage(msg)
			if parseErr != nil {
				slog.ErrorContext(ctx, "failed to parse message",
					"error", parseErr,
					"raw_message_id", msg.ID,
					"stream", c.cfg.Stream)
				_ = c.Ack(ctx, Message{ID: msg.ID, Raw: msg})
				continue
			}
			messages = append(messages, parsed)
		}
	}

	if len(messages) > 0 {
		slog.DebugContext(ctx, "read messages from stream",
			"count", len(messages),
			"stream", c.cfg.Stream,
			"consumer", c.cfg.Consumer)
	}

	return messages, nil
}

func (c *RedisConsumer) Ack(ctx context.Context, msg Message) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		return fmt.Errorf("xack (stream=%s): %w", c.cfg.Stream, err)
	}

	slog.DebugContext(ctx, "message acknowledged", "stream", c.cfg.Stream)
	return nil
}

func ParseMessage(msg redis.XMessage) (Message, error) {
	taskType, err := parseString(msg.Values, "task_type")
	if err != nil {
		return Message{}, err
	}
	participantAssessmentID, err := parseInt64(msg.Values, "participant_assessment_id")
	if err != nil {
		return Message{}, err
	}
	nominationID, err := parseOptionalInt64(msg.Values, "nomination_id")
	if err != nil {
		return Message{}, err
	}
	externalReviewerID, err := parseOptionalInt64(msg.Values, "external_reviewer_id")
	if err != nil {
		return Message{}, err
	}

	task := Task{
		TaskType:                TaskType(taskType),
		ParticipantAssessmentID: participantAssessmentID,
		NominationID:            nominationID,
		ExternalReviewerID:      externalReviewerID,
		Reason:                  parseOptionalString(msg.Values, "reason"),
		TraceID:                 parseOptionalString(msg.Values, "trace_id"),
	}

	switch task.TaskType {
	case TaskTypeReportRegeneration:
	case TaskTypeReviewerInvite:
		if task.ExternalReviewerID == nil {
			return Message{}, fmt.Errorf("missing external_reviewer_id")
		}
	default:
		return Message{}, fmt.Errorf("unknown task_type %q", task.TaskType)
	}

	return Message{ID: msg.ID, Task: task, Raw: msg}, nil
}

func parseInt64(values map[string]any, key string) (int64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	return fmt.Sprint(raw), nil
}

func parseOptionalInt64(values map[string]any, key string) (*int64, error) {
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &num, nil
}

func parseOptionalString(values map[string]any, key string) string {
	raw, ok := values[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(raw)
}

func taskValues(task Task) map[string]any {
	values := map[string]any{
		"task_type":                 string(task.TaskType),
		"participant_assessment_id": task.ParticipantAssessmentID,
	}
	if task.NominationID != nil {
		values["nomination_id"] = *task.NominationID
	}
	if task.ExternalReviewerID != nil {
		values["external_reviewer_id"] = *task.ExternalReviewerID
	}
	if task.Reason != "" {
		values["reason"] = task.Reason
	}
	if task.TraceID != "" {
		values["trace_id"] = task.TraceID
	}
	return values
}
