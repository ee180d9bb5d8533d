package reply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/rural_health_triage/internal/models"
)

const noFacilitiesFound = "No nearby hospitals found."

// FormatFacilities форматирует нумерованный список учреждений для письма
func FormatFacilities(facilities []models.Facility) string {
	if len(facilities) == 0 {
		return noFacilitiesFound
	}

	entries := make([]string, 0, len(facilities))
	for i, f := range facilities {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n", i+1, f.Name)
		fmt.Fprintf(&b, "   %s\n", f.Address)
		distance := "   Distance: " + FormatDistance(f.DistanceMeters)
		if f.IsApproximate {
			distance += " (approximate location)"
		}
		b.WriteString(distance + "\n")
		if f.Phone != "" {
			fmt.Fprintf(&b, "   Phone: %s\n", f.Phone)
		}
		if f.EmergencyCapable {
			b.WriteString("   Emergency services available\n")
		}
		fmt.Fprintf(&b, "   View on map: %s", f.MapURL)
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n")
}

// FormatDistance: метры до километра, дальше километры с одним знаком
func FormatDistance(meters int) string {
	if meters < 1000 {
		return strconv.Itoa(meters) + " m"
	}
	return strconv.FormatFloat(float64(meters)/1000, 'f', 1, 64) + " km"
}
