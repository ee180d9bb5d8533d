package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStatusNew      = "new"
	ReportStatusAssigned = "assigned"
	ReportStatusResolved = "resolved"
)

// Report - медицинское обращение, полученное по email
type Report struct {
	ID                  uuid.UUID  `json:"id"`
	PatientName         string     `json:"patient_name"`
	Email               string     `json:"email"`
	Subject             string     `json:"subject"`
	Body                string     `json:"body"`
	Symptoms            []string   `json:"symptoms"`
	Location            *string    `json:"location"`
	Status              string     `json:"status"`
	ResponderID         *uuid.UUID `json:"responder_id,omitempty"`
	ResponderName       *string    `json:"responder_name,omitempty"`
	ResponderAssignedAt *time.Time `json:"responder_assigned_at,omitempty"`
	AutoReplySentAt     *time.Time `json:"auto_reply_sent_at,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	ReceivedAt          time.Time  `json:"received_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// Critical вычисляется при каждом чтении и никогда не сохраняется в бд
	Critical bool `json:"critical"`
}

// Triage возвращает триаж-запись обращения
func (r *Report) Triage() TriageRecord {
	return TriageRecord{Symptoms: r.Symptoms, Location: r.Location}
}

// ReportStats - агрегированная статистика для дашборда
type ReportStats struct {
	TotalReports    int    `json:"total_reports"`
	ReportsToday    int    `json:"reports_today"`
	UniqueLocations int    `json:"unique_locations"`
	CommonSymptom   string `json:"common_symptom"`
}

// TimelineEvent - этап жизненного цикла обращения
type TimelineEvent struct {
	Kind  string    `json:"kind"`
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}
