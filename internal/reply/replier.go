package reply

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/pkg/logger"
)

// ErrDispatchFailed - письмо не ушло; запрос, ради которого оно отправлялось, считается неуспешным
var ErrDispatchFailed = errors.New("reply: dispatch failed")

// Dispatch - результат успешной отправки автоответа
type Dispatch struct {
	MessageID string
	Recipient string
	Subject   string
	Body      string
	SentAt    time.Time
}

// AutoReplier составляет и отправляет автоответ
type AutoReplier struct {
	composer *Composer
	sender   MailSender
	logger   *logrus.Logger
}

func NewAutoReplier(composer *Composer, sender MailSender, logger *logrus.Logger) *AutoReplier {
	return &AutoReplier{composer: composer, sender: sender, logger: logger}
}

// Preview составляет письмо без отправки
func (r *AutoReplier) Preview(ctx context.Context, name string, symptoms []string, location string) Message {
	return r.composer.Compose(ctx, name, symptoms, location)
}

// Send составляет и отправляет письмо. Ошибка отправки не проглатывается.
func (r *AutoReplier) Send(ctx context.Context, to, name string, symptoms []string, location string) (Dispatch, error) {
	msg := r.composer.Compose(ctx, name, symptoms, location)
	log := r.logger.WithFields(logrus.Fields{"component": "auto_reply", "to": logger.MaskEmail(to)})

	log.Info("Sending auto-reply")
	messageID, err := r.sender.SendText(ctx, to, msg.Subject, msg.Body)
	if err != nil {
		log.WithError(err).Error("Error sending auto-reply")
		return Dispatch{}, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}
	log.WithField("message_id", messageID).Info("Auto-reply sent successfully")

	return Dispatch{
		MessageID: messageID,
		Recipient: to,
		Subject:   msg.Subject,
		Body:      msg.Body,
		SentAt:    time.Now().UTC(),
	}, nil
}
