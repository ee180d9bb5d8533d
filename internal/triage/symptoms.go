package triage

import (
	"strings"
	"unicode/utf8"
)

// минимальная длина кандидата из разметки, короче - шум токенизатора
const minCandidateLength = 3

// SymptomExtractor сопоставляет текст с фиксированным словарём симптомов
type SymptomExtractor struct {
	vocabulary []string
}

func NewSymptomExtractor(vocabulary []string) *SymptomExtractor {
	terms := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			terms = append(terms, term)
		}
	}
	return &SymptomExtractor{vocabulary: terms}
}

// Extract возвращает найденные симптомы без повторов в порядке словаря.
// phrases - именные и прилагательные группы из разметки, сопоставляются нечётко.
// Отрицания не учитываются: "no fever" даёт "fever".
func (e *SymptomExtractor) Extract(text string, phrases []string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]bool, len(e.vocabulary))

	for _, term := range e.vocabulary {
		if strings.Contains(lower, term) {
			found[term] = true
		}
	}

	for _, phrase := range phrases {
		candidate := strings.ToLower(strings.TrimSpace(phrase))
		if utf8.RuneCountInString(candidate) < minCandidateLength {
			continue
		}
		for _, term := range e.vocabulary {
			if strings.Contains(candidate, term) || strings.Contains(term, candidate) {
				found[term] = true
			}
		}
	}

	symptoms := make([]string, 0, len(found))
	for _, term := range e.vocabulary {
		if found[term] {
			symptoms = append(symptoms, term)
		}
	}
	return symptoms
}
