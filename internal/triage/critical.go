package triage

import "strings"

// CriticalClassifier помечает обращения с неотложными симптомами.
// Результат не кешируется: флаг пересчитывается при каждом чтении.
type CriticalClassifier struct {
	reference []string
}

func NewCriticalClassifier(reference []string) *CriticalClassifier {
	list := make([]string, 0, len(reference))
	for _, item := range reference {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			list = append(list, item)
		}
	}
	return &CriticalClassifier{reference: list}
}

// IsCritical - true, если хотя бы один симптом содержит критический или содержится в нём.
// "pain" совпадает с "chest pain"; такое пересечение сохранено намеренно до решения продукта.
func (c *CriticalClassifier) IsCritical(symptoms []string) bool {
	for _, symptom := range symptoms {
		s := strings.ToLower(strings.TrimSpace(symptom))
		if s == "" {
			continue
		}
		for _, critical := range c.reference {
			if strings.Contains(s, critical) || strings.Contains(critical, s) {
				return true
			}
		}
	}
	return false
}
