package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// MailSender отправляет текстовое письмо и возвращает идентификатор сообщения
type MailSender interface {
	SendText(ctx context.Context, to, subject, body string) (string, error)
}

// PostmarkConfig - параметры транзакционной почты Postmark
type PostmarkConfig struct {
	BaseURL       string
	ServerToken   string
	From          string
	MessageStream string
	Timeout       time.Duration
}

// PostmarkSender отправляет письма через Postmark /email
type PostmarkSender struct {
	cfg    PostmarkConfig
	client *http.Client
}

func NewPostmarkSender(cfg PostmarkConfig) *PostmarkSender {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &PostmarkSender{cfg: cfg, client: &http.Client{}}
}

type postmarkEmail struct {
	From          string `json:"From"`
	To            string `json:"To"`
	Subject       string `json:"Subject"`
	TextBody      string `json:"TextBody"`
	MessageStream string `json:"MessageStream"`
}

type postmarkResponse struct {
	To        string `json:"To"`
	MessageID string `json:"MessageID"`
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

func (s *PostmarkSender) SendText(ctx context.Context, to, subject, body string) (string, error) {
	payload, err := json.Marshal(postmarkEmail{
		From:          s.cfg.From,
		To:            to,
		Subject:       subject,
		TextBody:      body,
		MessageStream: s.cfg.MessageStream,
	})
	if err != nil {
		return "", fmt.Errorf("postmark: could not marshal email: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("postmark: could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", s.cfg.ServerToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("postmark: request failed: %w", err)
	}
	defer resp.Body.Close()

	var result postmarkResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && result.Message != "" {
			return "", fmt.Errorf("postmark: status %d: error code %d: %s", resp.StatusCode, result.ErrorCode, result.Message)
		}
		return "", fmt.Errorf("postmark: unexpected status code %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("postmark: could not decode response: %w", decodeErr)
	}
	if result.ErrorCode != 0 {
		return "", fmt.Errorf("postmark: error code %d: %s", result.ErrorCode, result.Message)
	}

	return result.MessageID, nil
}
