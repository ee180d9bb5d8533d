package reply

import "github.com/shenikar/rural_health_triage/internal/vocabulary"

// HealthTips собирает советы по симптомам без повторов.
// Если ни для одного симптома советов нет, возвращаются общие советы.
func HealthTips(vocab *vocabulary.Vocabulary, symptoms []string) []string {
	seen := make(map[string]struct{})
	var tips []string
	for _, symptom := range symptoms {
		for _, tip := range vocab.TipsFor(symptom) {
			if _, ok := seen[tip]; ok {
				continue
			}
			seen[tip] = struct{}{}
			tips = append(tips, tip)
		}
	}
	if len(tips) == 0 {
		return append([]string(nil), vocab.FallbackTips...)
	}
	return tips
}
