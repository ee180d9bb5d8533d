package reply

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/vocabulary"
)

// Subject - фиксированная тема автоответа
const Subject = "We received your message – here's some help"

const facilitiesUnavailable = "Unable to fetch nearby medical facilities at this time."

var importantNotes = []string{
	"These are general guidelines and not a substitute for professional medical advice",
	"If your symptoms worsen or you experience severe symptoms, please seek immediate medical attention",
	"Our medical team will review your case and may follow up with additional guidance",
	"The listed medical facilities are based on OpenStreetMap data and may not be complete",
}

// FacilityFinder ищет учреждения рядом с местоположением.
// Пустой список без ошибки означает "ничего не найдено".
type FacilityFinder interface {
	Nearby(ctx context.Context, locationText string) ([]models.Facility, error)
}

// Message - готовое письмо
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Composer собирает текст автоответа пациенту
type Composer struct {
	vocab  *vocabulary.Vocabulary
	finder FacilityFinder
	logger *logrus.Logger
}

func NewComposer(vocab *vocabulary.Vocabulary, finder FacilityFinder, logger *logrus.Logger) *Composer {
	return &Composer{vocab: vocab, finder: finder, logger: logger}
}

// Compose никогда не падает: сбой поиска учреждений превращается в пояснение в тексте
func (c *Composer) Compose(ctx context.Context, name string, symptoms []string, location string) Message {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Patient"
	}
	location = strings.TrimSpace(location)

	var b strings.Builder
	b.WriteString("Dear " + name + ",\n\n")
	b.WriteString("Thank you for reaching out to our medical support system")
	if location != "" {
		b.WriteString(" in " + location)
	}
	b.WriteString(". We have received your report and would like to provide some immediate guidance.\n\n")

	b.WriteString("Reported Symptoms:\n")
	b.WriteString(bullets(symptoms))
	b.WriteString("\n\nImmediate Health Tips:\n")
	b.WriteString(bullets(HealthTips(c.vocab, symptoms)))

	if location != "" {
		b.WriteString(c.facilitySection(ctx, location))
	}

	b.WriteString("\n\nImportant Notes:\n")
	b.WriteString(bullets(importantNotes))
	b.WriteString("\n\nStay safe and take care,\nYour Rural Health Support Team")

	return Message{Subject: Subject, Body: strings.TrimSpace(b.String())}
}

// facilitySection различает ошибку поиска и пустой результат
func (c *Composer) facilitySection(ctx context.Context, location string) string {
	facilities, err := c.finder.Nearby(ctx, location)
	if err != nil {
		c.logger.WithError(err).WithField("location", location).Warn("Error getting nearby hospitals")
		return "\n" + facilitiesUnavailable + "\n"
	}
	return "\n\n\nNearby Medical Facilities:\n" + FormatFacilities(facilities) + "\n"
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
