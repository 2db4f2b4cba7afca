package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/taskhub/common/logger"
)

type ConsumerConfig struct {
	Stream    string        // Redis stream name
	Group     string        // Redis consumer group name
	Consumer  string        // Redis consumer name
	BatchSize int64         // Number of messages to read per batch
	Block     time.Duration // How long to block/poll for new messages
}

// Message is an Event read back from the stream together with its entry id.
type Message struct {
	ID    string
	Event Event
	Raw   redis.XMessage
}

// MessageHandler handles one activity event read from the stream.
type MessageHandler func(ctx context.Context, msg Message) error

type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
}

func NewRedisConsumer(ctx context.Context, client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	consumer := &RedisConsumer{
		client: client,
		cfg:    cfg,
	}

	if err := consumer.ensureGroup(ctx); err != nil {
		return nil, err
	}

	return consumer, nil
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	// Starting from "0" lets a new group see events already in the stream.
	if err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err(); err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "taskhub.queue.consumer",
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
		for _, raw := range stream.Messages {
			event, parseErr := ParseEvent(raw.Values)
			if parseErr != nil {
				slog.ErrorContext(ctx, "failed to parse message",
					"error", parseErr,
					"raw_message_id", raw.ID,
					"stream", c.cfg.Stream)
				_ = c.Ack(ctx, raw.ID)
				continue
			}
			messages = append(messages, Message{ID: raw.ID, Event: event, Raw: raw})
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

func (c *RedisConsumer) Ack(ctx context.Context, id string) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, id).Err(); err != nil {
		return fmt.Errorf("xack (stream=%s): %w", c.cfg.Stream, err)
	}
	return nil
}

// Run reads until ctx is cancelled, acking each message handle accepts.
// A message whose handler fails stays pending in the group.
func (c *RedisConsumer) Run(ctx context.Context, handle MessageHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		messages, err := c.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for _, msg := range messages {
			if err := handle(ctx, msg); err != nil {
				slog.WarnContext(ctx, "event handler failed", "error", err, "message_id", msg.ID)
				continue
			}
			if err := c.Ack(ctx, msg.ID); err != nil {
				slog.WarnContext(ctx, "failed to ack message", "error", err, "message_id", msg.ID)
			}
		}
	}
}

// ParseEvent is the inverse of Event.fields.
func ParseEvent(values map[string]any) (Event, error) {
	eventType, err := parseString(values, "event_type")
	if err != nil {
		return Event{}, err
	}

	switch EventType(eventType) {
	case EventTypeUserCreated, EventTypeWorkspaceCreated, EventTypeWorkspaceUserAdded,
		EventTypeTaskCreated, EventTypeTaskCompleted:
	default:
		return Event{}, fmt.Errorf("unknown event_type %q", eventType)
	}

	userID, err := parseOptionalInt64(values, "user_id")
	if err != nil {
		return Event{}, err
	}
	workspaceID, err := parseOptionalInt64(values, "workspace_id")
	if err != nil {
		return Event{}, err
	}
	taskID, err := parseOptionalInt64(values, "task_id")
	if err != nil {
		return Event{}, err
	}

	event := Event{
		Type:        EventType(eventType),
		UserID:      userID,
		WorkspaceID: workspaceID,
		TaskID:      taskID,
	}
	if requestID, ok := values["request_id"]; ok {
		s := fmt.Sprint(requestID)
		event.RequestID = &s
	}
	return event, nil
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
