package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/service"
)

// AuditRepository хранит журнал аудита и копии отправленных писем
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) service.AuditRepository {
	return &AuditRepository{db: db}
}

// Record добавляет запись в журнал аудита
func (r *AuditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]string{}
	}
	query := `
		INSERT INTO audit_logs (report_id, action, actor, details)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, entry.ReportID, entry.Action, entry.Actor, details).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// ListByReport возвращает журнал обращения в хронологическом порядке
func (r *AuditRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.AuditEntry, error) {
	query := `
		SELECT id, report_id, action, actor, details, created_at
		FROM audit_logs
		WHERE report_id = $1
		ORDER BY created_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.AuditEntry, 0)
	for rows.Next() {
		entry := &models.AuditEntry{}
		if err := rows.Scan(&entry.ID, &entry.ReportID, &entry.Action, &entry.Actor, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return entries, nil
}

// SaveSentEmail сохраняет копию отправленного автоответа
func (r *AuditRepository) SaveSentEmail(ctx context.Context, email *models.SentEmail) error {
	query := `
		INSERT INTO sent_emails (report_id, recipient, subject, body, message_id, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		email.ReportID,
		email.Recipient,
		email.Subject,
		email.Body,
		email.MessageID,
		email.SentAt,
	).Scan(&email.ID)
	if err != nil {
		return fmt.Errorf("failed to save sent email: %w", err)
	}
	return nil
}

// ListSentEmails возвращает письма, отправленные по обращению
func (r *AuditRepository) ListSentEmails(ctx context.Context, reportID uuid.UUID) ([]*models.SentEmail, error) {
	query := `
		SELECT id, report_id, recipient, subject, body, message_id, sent_at
		FROM sent_emails
		WHERE report_id = $1
		ORDER BY sent_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent emails: %w", err)
	}
	defer rows.Close()

	emails := make([]*models.SentEmail, 0)
	for rows.Next() {
		email := &models.SentEmail{}
		if err := rows.Scan(&email.ID, &email.ReportID, &email.Recipient, &email.Subject, &email.Body, &email.MessageID, &email.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan sent email row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return emails, nil
}
