package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/config"
)

const signatureHeader = "X-Webhook-Signature"

// AlertWorker - структура для доставки оповещений на внешний вебхук
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди оповещений
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - ждать бесконечно
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					sleepCtx(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет оповещение с экспоненциальной задержкой между попытками
func (w *AlertWorker) deliver(ctx context.Context, event AlertEvent, rawPayload string) bool {
	log := w.logger.WithField("report_id", event.ReportID)
	log.Debug("Processing alert event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			if !sleepCtx(ctx, delay) {
				log.Warn("Alert delivery cancelled")
				return false
			}
			delay *= 2
		}

		status, err := w.send(ctx, rawPayload)
		if err != nil {
			log.WithError(err).Warnf("Failed to send alert. Retries left: %d", maxRetries-1-i)
			continue
		}
		if status >= 200 && status < 300 {
			log.Info("Alert delivered successfully.")
			return true
		}
		log.Warnf("Alert delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
	}

	log.Errorf("Failed to deliver alert after %d attempts.", maxRetries)
	return false
}

func (w *AlertWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// sleepCtx ждёт d или отмены контекста; false - контекст отменён
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
