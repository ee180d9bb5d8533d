package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/service"
)

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

// Create создает нового ответственного
func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (name, email, status)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, responder.Name, responder.Email, responder.Status).
		Scan(&responder.ID, &responder.CreatedAt, &responder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}
	return nil
}

// GetByID возвращает ответственного по UUID
func (r *ResponderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	responder := &models.Responder{}
	query := `
		SELECT id, name, email, status, created_at, updated_at
		FROM responders
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&responder.ID,
		&responder.Name,
		&responder.Email,
		&responder.Status,
		&responder.CreatedAt,
		&responder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("responder with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}

// List возвращает ответственных по имени; неактивные только по запросу
func (r *ResponderRepository) List(ctx context.Context, includeInactive bool) ([]*models.Responder, error) {
	query := `
		SELECT id, name, email, status, created_at, updated_at
		FROM responders
		WHERE $1 OR status = 'active'
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder := &models.Responder{}
		if err := rows.Scan(
			&responder.ID,
			&responder.Name,
			&responder.Email,
			&responder.Status,
			&responder.CreatedAt,
			&responder.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return responders, nil
}

func (r *ResponderRepository) Update(ctx context.Context, responder *models.Responder) error {
	query := `
		UPDATE responders SET
			name = $1,
			email = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query, responder.Name, responder.Email, responder.Status, responder.ID).
		Scan(&responder.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("responder with id %s: %w", responder.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update responder: %w", err)
	}
	return nil
}

// Deactivate устанавливает статус 'inactive'
func (r *ResponderRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE responders SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate responder: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("responder with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}
