package models

// TriageRecord - структурированный результат разбора входящего письма
type TriageRecord struct {
	Symptoms []string `json:"symptoms"`
	Location *string  `json:"location"`
}

// HasLocation сообщает, удалось ли извлечь местоположение
func (r TriageRecord) HasLocation() bool {
	return r.Location != nil && *r.Location != ""
}

// LocationOrEmpty возвращает местоположение или пустую строку
func (r TriageRecord) LocationOrEmpty() string {
	if r.Location == nil {
		return ""
	}
	return *r.Location
}
