package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResponderStatusActive   = "active"
	ResponderStatusInactive = "inactive"
)

// Responder - сотрудник, обрабатывающий обращения
type Responder struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
