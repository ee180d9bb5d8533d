package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/rural_health_triage/internal/models"
)

const addressNotAvailable = "Address not available"

// LocatorConfig - параметры поиска учреждений
type LocatorConfig struct {
	RadiusMeters int
	MaxResults   int
	Concurrency  int
}

// Locator находит ближайшие больницы и клиники для текстового местоположения
type Locator struct {
	geocoder Geocoder
	source   FacilitySource
	cfg      LocatorConfig
	logger   *logrus.Logger
}

func NewLocator(geocoder Geocoder, source FacilitySource, cfg LocatorConfig, logger *logrus.Logger) *Locator {
	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = 5000
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Locator{geocoder: geocoder, source: source, cfg: cfg, logger: logger}
}

// Nearby возвращает до MaxResults учреждений по возрастанию расстояния.
// Нераспознанное местоположение дает пустой список без ошибки;
// сбой геокодера или Overpass возвращается как ошибка.
func (l *Locator) Nearby(ctx context.Context, locationText string) ([]models.Facility, error) {
	log := l.logger.WithFields(logrus.Fields{
		"component": "locator",
		"location":  locationText,
	})

	origin, err := l.geocoder.Geocode(ctx, locationText)
	if err != nil {
		if isAbsent(err) {
			log.Info("No coordinates found for location")
			return []models.Facility{}, nil
		}
		return nil, fmt.Errorf("locator: could not geocode location: %w", err)
	}

	elements, err := l.source.Search(ctx, origin, l.cfg.RadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("locator: could not search facilities: %w", err)
	}

	candidates := make([]*models.Facility, len(elements))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Concurrency)

	for i, el := range elements {
		i, el := i, el
		name := strings.TrimSpace(el.Tags["name"])
		if name == "" {
			continue
		}
		g.Go(func() error {
			point, approximate, ok := l.coordinates(gctx, el, name)
			if !ok {
				log.WithField("facility", name).Warn("No coordinates available for facility")
				return nil
			}
			candidates[i] = buildFacility(el, name, point, approximate, origin)
			return nil
		})
	}
	// горутины не возвращают ошибок, пропуск элемента не прерывает поиск
	_ = g.Wait()

	facilities := make([]models.Facility, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, f := range candidates {
		if f == nil {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		facilities = append(facilities, *f)
	}

	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DistanceMeters < facilities[j].DistanceMeters
	})
	if len(facilities) > l.cfg.MaxResults {
		facilities = facilities[:l.cfg.MaxResults]
	}

	log.WithField("count", len(facilities)).Debug("Nearby facilities resolved")
	return facilities, nil
}

// FindNearby - мягкий вариант Nearby: при любой ошибке пустой список
func (l *Locator) FindNearby(ctx context.Context, locationText string) []models.Facility {
	facilities, err := l.Nearby(ctx, locationText)
	if err != nil {
		l.logger.WithError(err).WithField("location", locationText).Error("Error finding nearby hospitals")
		return []models.Facility{}
	}
	return facilities
}

// coordinates выбирает координаты: точка, центр, середина границ, повторное геокодирование адреса
func (l *Locator) coordinates(ctx context.Context, el OverpassElement, name string) (models.GeoPoint, bool, bool) {
	switch {
	case el.Lat != nil && el.Lon != nil:
		return models.GeoPoint{Latitude: *el.Lat, Longitude: *el.Lon}, false, true
	case el.Center != nil:
		return models.GeoPoint{Latitude: el.Center.Lat, Longitude: el.Center.Lon}, true, true
	case el.Bounds != nil:
		return models.GeoPoint{
			Latitude:  (el.Bounds.MinLat + el.Bounds.MaxLat) / 2,
			Longitude: (el.Bounds.MinLon + el.Bounds.MaxLon) / 2,
		}, true, true
	}

	parts := addressParts(el.Tags)
	if len(parts) == 0 {
		return models.GeoPoint{}, false, false
	}
	point, ok := Resolve(ctx, l.geocoder, l.logger, name+", "+strings.Join(parts, ", "))
	return point, true, ok
}

func buildFacility(el OverpassElement, name string, point models.GeoPoint, approximate bool, origin models.GeoPoint) *models.Facility {
	address := strings.Join(addressParts(el.Tags), ", ")
	if address == "" {
		address = addressNotAvailable
	}
	phone := el.Tags["contact:phone"]
	if phone == "" {
		phone = el.Tags["phone"]
	}

	return &models.Facility{
		Name:             name,
		Address:          address,
		Location:         point,
		DistanceMeters:   int(math.Round(Distance(origin, point))),
		IsApproximate:    approximate,
		EmergencyCapable: el.Tags["emergency"] == "yes",
		Phone:            phone,
		Website:          el.Tags["website"],
		MapURL:           MapLink(point, name),
	}
}

func addressParts(tags map[string]string) []string {
	var parts []string
	for _, key := range []string{"addr:street", "addr:city", "addr:state", "addr:postcode"} {
		if v := strings.TrimSpace(tags[key]); v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

func isAbsent(err error) bool {
	return errors.Is(err, ErrNoResults) || errors.Is(err, ErrEmptyQuery)
}
