package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "triage:alerts"
)

// AlertEvent - оповещение ответственных о критическом обращении
type AlertEvent struct {
	ReportID    uuid.UUID `json:"report_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Symptoms    []string  `json:"symptoms"`
	Location    *string   `json:"location,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
	Timestamp   time.Time `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует оповещение в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
