package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// InboundEmailRequest DTO входящего письма (формат inbound-вебхука Postmark)
// @Description DTO входящего письма
type InboundEmailRequest struct {
	From     string `json:"From" validate:"required,max=320"`
	FromName string `json:"FromName,omitempty" validate:"max=255"`
	Subject  string `json:"Subject" validate:"required,max=998"`
	TextBody string `json:"TextBody" validate:"required_without=HtmlBody"`
	HtmlBody string `json:"HtmlBody,omitempty"`
}

// InboundEmailResponse DTO ответа на обработку входящего письма
// @Description DTO ответа на обработку входящего письма
type InboundEmailResponse struct {
	Message string          `json:"message"`
	Report  *ReportResponse `json:"data"`
}

// DispatchFailedResponse DTO ответа при неудачной отправке автоответа
// @Description Обращение сохранено, но автоответ не отправлен
type DispatchFailedResponse struct {
	Error    string    `json:"error"`
	ReportID uuid.UUID `json:"report_id"`
}

// ReportResponse DTO обращения
// @Description DTO обращения пациента
type ReportResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PatientName         string     `json:"patient_name"`
	Email               string     `json:"email"`
	Subject             string     `json:"subject"`
	Body                string     `json:"body,omitempty"`
	Symptoms            []string   `json:"symptoms"`
	Location            *string    `json:"location"`
	Status              string     `json:"status"`
	Critical            bool       `json:"critical"`
	ResponderID         *uuid.UUID `json:"responder_id,omitempty"`
	ResponderName       *string    `json:"responder_name,omitempty"`
	ResponderAssignedAt *time.Time `json:"responder_assigned_at,omitempty"`
	AutoReplySentAt     *time.Time `json:"auto_reply_sent_at,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
	ReceivedAt          time.Time  `json:"received_at"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AssignResponderRequest DTO назначения ответственного
// @Description DTO назначения ответственного
type AssignResponderRequest struct {
	ResponderID string `json:"responder_id" validate:"required,uuid"`
	Actor       string `json:"actor,omitempty" validate:"max=255"`
}

// ResolveReportRequest DTO закрытия обращения
// @Description DTO закрытия обращения
type ResolveReportRequest struct {
	Actor string `json:"actor,omitempty" validate:"max=255"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalReports    int    `json:"totalReports"`
	ReportsToday    int    `json:"reportsToday"`
	UniqueLocations int    `json:"uniqueLocations"`
	CommonSymptom   string `json:"commonSymptom"`
}

// CreateResponderRequest DTO для создания ответственного
// @Description DTO для создания ответственного
type CreateResponderRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateResponderRequest DTO для обновления ответственного
// @Description DTO для обновления ответственного
type UpdateResponderRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// ResponderResponse DTO ответственного
// @Description DTO ответственного
type ResponderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseRequest DTO разбора текста
// @Description DTO разбора текста
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// ParseResponse DTO результата разбора
// @Description DTO результата разбора
type ParseResponse struct {
	Symptoms []string `json:"symptoms"`
	Location *string  `json:"location"`
	Critical bool     `json:"critical"`
}

// FacilitiesRequest DTO поиска учреждений
// @Description DTO поиска учреждений
type FacilitiesRequest struct {
	Location string `json:"location" validate:"required,max=500"`
}

// FacilitiesResponse DTO найденных учреждений
// @Description Unavailable=true, если внешний сервис не ответил
type FacilitiesResponse struct {
	Location    string            `json:"location"`
	Facilities  []models.Facility `json:"facilities"`
	Unavailable bool              `json:"unavailable"`
}

// ReplyPreviewRequest DTO предпросмотра автоответа
// @Description DTO предпросмотра автоответа
type ReplyPreviewRequest struct {
	Name     string   `json:"name,omitempty" validate:"max=255"`
	Symptoms []string `json:"symptoms" validate:"dive,required"`
	Location string   `json:"location,omitempty" validate:"max=500"`
}

// ReplyPreviewResponse DTO письма
// @Description DTO письма
type ReplyPreviewResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TimelineEventResponse DTO этапа обработки
// @Description DTO этапа обработки
type TimelineEventResponse struct {
	Kind  string    `json:"kind"`
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}

// SentEmailResponse DTO отправленного письма
// @Description DTO отправленного письма
type SentEmailResponse struct {
	ID        int64     `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}

// AuditEntryResponse DTO записи аудита
// @Description DTO записи аудита
type AuditEntryResponse struct {
	ID        int64             `json:"id"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
