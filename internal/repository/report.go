package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/cache"
	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/service"
)

const (
	reportCacheNamespace = "report"
	reportCacheTTL       = 5 * time.Minute
)

const reportColumns = `
	r.id,
	r.patient_name,
	r.email,
	r.subject,
	r.body,
	r.symptoms,
	r.location,
	r.status,
	r.responder_id,
	p.name,
	r.responder_assigned_at,
	r.auto_reply_sent_at,
	r.resolved_at,
	r.received_at,
	r.created_at,
	r.updated_at`

type ReportRepository struct {
	db     *pgxpool.Pool
	cache  cache.Cache
	logger *logrus.Logger
}

// NewReportRepository создает репозиторий обращений; cache может быть nil
func NewReportRepository(db *pgxpool.Pool, c cache.Cache, logger *logrus.Logger) service.ReportRepository {
	return &ReportRepository{
		db:     db,
		cache:  c,
		logger: logger,
	}
}

// Create сохраняет новое обращение
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO medical_reports (patient_name, email, subject, body, symptoms, location, status, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	symptoms := report.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	err := r.db.QueryRow(ctx, query,
		report.PatientName,
		report.Email,
		report.Subject,
		report.Body,
		symptoms,
		report.Location,
		report.Status,
		report.ReceivedAt,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает обращение по UUID, сначала проверяя кэш
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	if report := r.getFromCache(ctx, id); report != nil {
		return report, nil
	}

	query := `SELECT` + reportColumns + `
		FROM medical_reports r
		LEFT JOIN responders p ON p.id = r.responder_id
		WHERE r.id = $1;
	`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}

	r.setCache(ctx, report)
	return report, nil
}

// ListReports возвращает обращения, новые первыми
func (r *ReportRepository) ListReports(ctx context.Context, page, pageSize int) ([]*models.Report, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + reportColumns + `
		FROM medical_reports r
		LEFT JOIN responders p ON p.id = r.responder_id
		ORDER BY r.received_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// MarkAutoReplySent фиксирует время отправки автоответа
func (r *ReportRepository) MarkAutoReplySent(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE medical_reports SET
			auto_reply_sent_at = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	return r.exec(ctx, id, "mark auto-reply sent", query, at, id)
}

// AssignResponder назначает ответственного и переводит обращение в статус assigned
func (r *ReportRepository) AssignResponder(ctx context.Context, id, responderID uuid.UUID, at time.Time) error {
	query := `
		UPDATE medical_reports SET
			responder_id = $1,
			responder_assigned_at = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	return r.exec(ctx, id, "assign responder", query, responderID, at, models.ReportStatusAssigned, id)
}

// Resolve закрывает обращение
func (r *ReportRepository) Resolve(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE medical_reports SET
			status = $1,
			resolved_at = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	return r.exec(ctx, id, "resolve report", query, models.ReportStatusResolved, at, id)
}

// GetStats считает статистику для дашборда; since - начало текущих суток
func (r *ReportRepository) GetStats(ctx context.Context, since time.Time) (*models.ReportStats, error) {
	stats := &models.ReportStats{}
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE received_at >= $1),
			COUNT(DISTINCT location)
		FROM medical_reports;
	`
	if err := r.db.QueryRow(ctx, query, since).Scan(&stats.TotalReports, &stats.ReportsToday, &stats.UniqueLocations); err != nil {
		return nil, fmt.Errorf("failed to get report stats: %w", err)
	}

	symptomQuery := `
		SELECT s
		FROM medical_reports, unnest(symptoms) AS s
		GROUP BY s
		ORDER BY COUNT(*) DESC, s ASC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, symptomQuery).Scan(&stats.CommonSymptom)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get common symptom: %w", err)
	}
	return stats, nil
}

func (r *ReportRepository) exec(ctx context.Context, id uuid.UUID, action, query string, args ...any) error {
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	// RowsAffected() == 0 - обращения с таким id нет
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s: %w", id, models.ErrNotFound)
	}
	r.invalidateCache(ctx, id)
	return nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.PatientName,
		&report.Email,
		&report.Subject,
		&report.Body,
		&report.Symptoms,
		&report.Location,
		&report.Status,
		&report.ResponderID,
		&report.ResponderName,
		&report.ResponderAssignedAt,
		&report.AutoReplySentAt,
		&report.ResolvedAt,
		&report.ReceivedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if report.Symptoms == nil {
		report.Symptoms = []string{}
	}
	return report, nil
}

// getFromCache пытается получить обращение из кэша; ошибки кэша не фатальны
func (r *ReportRepository) getFromCache(ctx context.Context, id uuid.UUID) *models.Report {
	if r.cache == nil {
		return nil
	}
	val, found, err := r.cache.Get(ctx, cache.Key(reportCacheNamespace, id.String()))
	if err != nil {
		r.logger.WithError(err).Warn("Failed to get report from cache")
		return nil
	}
	if !found {
		return nil
	}
	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		r.logger.WithError(err).Warn("Failed to unmarshal report from cache")
		return nil
	}
	return report
}

// setCache кэширует только обращения без ответственного: имя ответственного
// берётся из responders и меняется без записи в medical_reports
func (r *ReportRepository) setCache(ctx context.Context, report *models.Report) {
	if r.cache == nil || report.ResponderID != nil {
		return
	}
	val, err := json.Marshal(report)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to marshal report for cache")
		return
	}
	if err := r.cache.Set(ctx, cache.Key(reportCacheNamespace, report.ID.String()), val, reportCacheTTL); err != nil {
		r.logger.WithError(err).Warn("Failed to set report in cache")
	}
}

func (r *ReportRepository) invalidateCache(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, cache.Key(reportCacheNamespace, id.String())); err != nil {
		r.logger.WithError(err).Warn("Failed to invalidate report cache")
	}
}
