package models

// GeoPoint - координаты в градусах (WGS84)
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Facility - медицинское учреждение рядом с пациентом.
// Создаётся заново на каждый поиск и не сохраняется.
type Facility struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Location         GeoPoint `json:"location"`
	DistanceMeters   int      `json:"distance_meters"`
	IsApproximate    bool     `json:"is_approximate"`
	EmergencyCapable bool     `json:"emergency_capable"`
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	MapURL           string   `json:"map_url"`
}
