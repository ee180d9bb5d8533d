package geo

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/rural_health_triage/internal/models"
)

// EarthRadiusMeters - средний радиус Земли для формулы гаверсинусов
const EarthRadiusMeters = 6371e3

// Distance возвращает расстояние по дуге большого круга в метрах
func Distance(a, b models.GeoPoint) float64 {
	phi1 := toRadians(a.Latitude)
	phi2 := toRadians(b.Latitude)
	dPhi := toRadians(b.Latitude - a.Latitude)
	dLambda := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// MapLink строит ссылку на OpenStreetMap с маркером и названием
func MapLink(point models.GeoPoint, name string) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s&zoom=17&query=%s",
		formatCoord(point.Latitude),
		formatCoord(point.Longitude),
		strings.ReplaceAll(url.QueryEscape(name), "+", "%20"),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
