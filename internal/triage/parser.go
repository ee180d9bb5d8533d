package triage

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"github.com/shenikar/rural_health_triage/internal/models"
	"github.com/shenikar/rural_health_triage/internal/vocabulary"
)

// Parser превращает текст письма в триаж-запись.
// Чистая функция: один и тот же текст всегда даёт один и тот же результат.
type Parser struct {
	symptoms  *SymptomExtractor
	locations *LocationExtractor
	analyzer  Analyzer
	logger    *logrus.Logger
}

// NewParser создает парсер; analyzer может быть nil, тогда работают только словарь и шаблоны
func NewParser(vocab *vocabulary.Vocabulary, analyzer Analyzer, logger *logrus.Logger) *Parser {
	return &Parser{
		symptoms:  NewSymptomExtractor(vocab.Symptoms),
		locations: NewLocationExtractor(),
		analyzer:  analyzer,
		logger:    logger,
	}
}

// Parse извлекает симптомы и местоположение из одной нормализованной копии текста
func (p *Parser) Parse(raw string) models.TriageRecord {
	text := Normalize(raw)

	var analysis Analysis
	if p.analyzer != nil {
		analysis = p.analyzer.Analyze(text)
	}

	record := models.TriageRecord{
		Symptoms: p.symptoms.Extract(text, analysis.Phrases),
		Location: p.locations.Extract(text, analysis.Places),
	}

	p.logger.WithFields(logrus.Fields{
		"component": "parser",
		"symptoms":  record.Symptoms,
		"location":  record.LocationOrEmpty(),
	}).Debug("Parsed medical report")

	return record
}

// Normalize приводит текст к NFKC, схлопывает пробелы и обрезает края.
// Регистр сохраняется.
func Normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(text)), " ")
}
