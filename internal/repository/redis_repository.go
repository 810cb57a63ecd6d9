package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quiz-widget/backend/internal/model"
)

type redisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRepository stores transcripts in Redis. Every write refreshes the
// expiry of the widget's keys to ttl; zero keeps them until deleted.
func NewRedisRepository(rdb *redis.Client, ttl time.Duration) Repository {
	return &redisRepository{rdb: rdb, ttl: ttl}
}

// Key Generation Helpers
func (r *redisRepository) widgetKey(widgetID string) string   { return fmt.Sprintf("widget:%s", widgetID) }
func (r *redisRepository) messagesKey(widgetID string) string { return fmt.Sprintf("widget:%s:messages", widgetID) }

func (r *redisRepository) expire(ctx context.Context, pipe redis.Pipeliner, keys ...string) {
	if r.ttl <= 0 {
		return
	}
	for _, key := range keys {
		pipe.Expire(ctx, key, r.ttl)
	}
}

func (r *redisRepository) CreateWidget(ctx context.Context, widget *model.Widget) error {
	widgetMap, err := structToMap(widget)
	if err != nil {
		return fmt.Errorf("could not convert widget to map: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, r.widgetKey(widget.ID), widgetMap)
	r.expire(ctx, pipe, r.widgetKey(widget.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetWidget(ctx context.Context, widgetID string) (*model.Widget, error) {
	widgetMap, err := r.rdb.HGetAll(ctx, r.widgetKey(widgetID)).Result()
	if err != nil {
		return nil, err
	}
	if len(widgetMap) == 0 {
		return nil, ErrNotFound
	}
	var widget model.Widget
	if err := mapToStruct(widgetMap, &widget); err != nil {
		return nil, fmt.Errorf("could not decode widget: %w", err)
	}
	return &widget, nil
}

func (r *redisRepository) DeleteWidget(ctx context.Context, widgetID string) error {
	if err := r.rdb.Del(ctx, r.widgetKey(widgetID), r.messagesKey(widgetID)).Err(); err != nil {
		return fmt.Errorf("failed to delete widget keys: %w", err)
	}
	return nil
}

func (r *redisRepository) SaveMessages(ctx context.Context, widgetID string, messages []model.ChatMessage) error {
	exists, err := r.rdb.Exists(ctx, r.widgetKey(widgetID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	encoded := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("could not marshal message %s: %w", msg.ID, err)
		}
		encoded = append(encoded, data)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, r.messagesKey(widgetID))
	if len(encoded) > 0 {
		pipe.RPush(ctx, r.messagesKey(widgetID), encoded...)
	}
	pipe.HSet(ctx, r.widgetKey(widgetID), "updated_at", time.Now().UTC().Format(time.RFC3339Nano))
	r.expire(ctx, pipe, r.widgetKey(widgetID), r.messagesKey(widgetID))
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetMessages(ctx context.Context, widgetID string) ([]model.ChatMessage, error) {
	raw, err := r.rdb.LRange(ctx, r.messagesKey(widgetID), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.ChatMessage{}, nil
		}
		return nil, err
	}
	messages := make([]model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("could not decode message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// --- Helper Functions ---
func structToMap(obj interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var mapData map[string]interface{}
	return mapData, json.Unmarshal(data, &mapData)
}

func mapToStruct(data map[string]string, obj interface{}) error {
	jsonStr, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonStr, obj)
}
