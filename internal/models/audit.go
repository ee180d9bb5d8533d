package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditReportReceived   = "report_received"
	AuditAutoReplySent    = "auto_reply_sent"
	AuditAutoReplyFailed  = "auto_reply_failed"
	AuditResponderAssign  = "responder_assigned"
	AuditReportResolved   = "report_resolved"
	AuditResponderChanged = "responder_changed"
)

// AuditEntry - запись журнала аудита
type AuditEntry struct {
	ID        int64             `json:"id"`
	ReportID  *uuid.UUID        `json:"report_id,omitempty"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// SentEmail - сохранённая копия отправленного автоответа
type SentEmail struct {
	ID        int64     `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}
