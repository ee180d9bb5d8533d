package geo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/rural_health_triage/internal/models"
)

var (
	// ErrNoResults - сервис ответил, но кандидатов нет
	ErrNoResults = errors.New("geocoder: no results")
	// ErrEmptyQuery - после очистки запрос пуст
	ErrEmptyQuery = errors.New("geocoder: empty query")
)

var nearPrefix = regexp.MustCompile(`(?i)^\s*near\s+`)

// Geocoder переводит текстовое местоположение в координаты
type Geocoder interface {
	Geocode(ctx context.Context, query string) (models.GeoPoint, error)
}

// CleanQuery убирает ведущее "near " и пробелы
func CleanQuery(query string) string {
	return strings.TrimSpace(nearPrefix.ReplaceAllString(query, ""))
}

// Resolve - мягкая обёртка: любая ошибка превращается в отсутствие результата
func Resolve(ctx context.Context, g Geocoder, logger *logrus.Logger, query string) (models.GeoPoint, bool) {
	point, err := g.Geocode(ctx, query)
	if err != nil {
		log := logger.WithField("query", query)
		if errors.Is(err, ErrNoResults) || errors.Is(err, ErrEmptyQuery) {
			log.Info("No coordinates found for location")
		} else {
			log.WithError(err).Warn("Error geocoding location")
		}
		return models.GeoPoint{}, false
	}
	return point, true
}

// MultipleGeocoderErrors собирает ошибки всех геокодеров цепочки
type MultipleGeocoderErrors struct {
	errors []error
}

func (e *MultipleGeocoderErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

// Unwrap раскрывает только сбои звеньев: "нет результатов" от части цепочки
// не должно выдавать всю цепочку за ErrNoResults
func (e *MultipleGeocoderErrors) Unwrap() []error {
	failures := make([]error, 0, len(e.errors))
	for _, err := range e.errors {
		if !errors.Is(err, ErrNoResults) {
			failures = append(failures, err)
		}
	}
	return failures
}

// ChainGeocoder опрашивает геокодеры по порядку до первого успеха
type ChainGeocoder struct {
	geocoders []Geocoder
}

func NewChainGeocoder(geocoders ...Geocoder) *ChainGeocoder {
	return &ChainGeocoder{geocoders: geocoders}
}

// Geocode возвращает ErrNoResults, только если все звенья ответили "нет результатов"
func (c *ChainGeocoder) Geocode(ctx context.Context, query string) (models.GeoPoint, error) {
	var errs []error
	for _, g := range c.geocoders {
		point, err := g.Geocode(ctx, query)
		if err == nil {
			return point, nil
		}
		errs = append(errs, err)
	}

	allEmpty := len(errs) > 0
	for _, err := range errs {
		if !errors.Is(err, ErrNoResults) {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return models.GeoPoint{}, ErrNoResults
	}
	return models.GeoPoint{}, &MultipleGeocoderErrors{errors: errs}
}
