package triage

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// locationRule - пара "сопоставитель + извлекатель".
// extract получает индексы совпадения из FindAllStringSubmatchIndex.
type locationRule struct {
	name    string
	matcher *regexp.Regexp
	extract func(text string, loc []int) string
}

var (
	streetAddressPattern = regexp.MustCompile(`(?i)\b(\d{1,6}\s+(?:[a-z0-9.'-]+\s+){0,4}?(?:street|st|avenue|ave|road|rd|drive|dr|lane|ln|boulevard|blvd|way|court|ct|place|pl|highway|hwy)\b\.?(?:,?\s+[a-z]+(?:\s+[a-z]+){0,2},?\s+[a-z]{2}\s+\d{5}(?:-\d{4})?)?)`)
	cityStateZipPattern  = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+){0,2},\s*[A-Z]{2}(?:\s+\d{5}(?:-\d{4})?)?)\b`)
	placePhrasePattern   = regexp.MustCompile(`(?i)\b(?:located in|based in|in|from|near|at)\s+((?:[a-z]+\s+){1,3}?(?:village|town|city|district|state|province))\b`)
	prepositionPattern   = regexp.MustCompile(`(?i)\b(?:located in|based in|in|from|near|at)\s+`)
	phraseWordsPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*`)
	// предлог места непосредственно перед распознанным названием
	placePrepositionTail = regexp.MustCompile(`(?i)\b(?:in|from|near|at|to|around|outside|of)\s+(?:the\s+)?$`)
)

// слова, на которых обрывается свободная фраза после предлога
var phraseStopWords = map[string]bool{
	"and": true, "but": true, "or": true, "so": true, "with": true, "because": true,
	"since": true, "for": true, "to": true, "i": true, "im": true, "my": true, "me": true,
	"we": true, "our": true, "us": true, "you": true, "your": true, "he": true, "she": true,
	"they": true, "it": true, "this": true, "that": true, "who": true, "which": true,
	"where": true, "when": true, "while": true, "please": true, "have": true, "has": true,
	"had": true, "am": true, "is": true, "are": true, "was": true, "were": true, "been": true,
	"feel": true, "feeling": true, "in": true, "at": true, "from": true, "near": true,
	"on": true, "by": true, "about": true, "after": true, "before": true, "during": true,
	"today": true, "tonight": true, "yesterday": true, "morning": true, "evening": true,
	"afternoon": true, "night": true, "day": true, "days": true, "week": true,
	"weeks": true, "hours": true, "months": true,
}

var leadingArticles = map[string]bool{"the": true, "a": true, "an": true}

// defaultLocationRules - от самого конкретного шаблона к самому общему
var defaultLocationRules = []locationRule{
	{name: "street_address", matcher: streetAddressPattern, extract: captureGroup},
	{name: "city_state_zip", matcher: cityStateZipPattern, extract: captureGroup},
	{name: "place_phrase", matcher: placePhrasePattern, extract: captureGroup},
	{name: "preposition_phrase", matcher: prepositionPattern, extract: phraseAfterMatch},
}

// LocationExtractor выбирает одно наиболее конкретное местоположение из текста
type LocationExtractor struct {
	rules []locationRule
}

func NewLocationExtractor() *LocationExtractor {
	return &LocationExtractor{rules: defaultLocationRules}
}

// Extract работает в две фазы: сначала берёт распознанное место, затем расширяет его
// до первого совпадения шаблона, которое содержит это место. Распознанное место
// без такого совпадения принимается только после предлога места.
// Иначе берётся первое совпадение длиннее двух символов.
func (e *LocationExtractor) Extract(text string, places []string) *string {
	for _, place := range places {
		if place = cleanLocation(place); place == "" {
			continue
		}
		if wider := e.widen(text, place); wider != "" {
			return &wider
		}
		if followsPlacePreposition(text, place) {
			return &place
		}
	}

	for _, rule := range e.rules {
		for _, loc := range rule.matcher.FindAllStringSubmatchIndex(text, -1) {
			candidate := cleanLocation(rule.extract(text, loc))
			if utf8.RuneCountInString(candidate) > 2 {
				return &candidate
			}
		}
	}
	return nil
}

func followsPlacePreposition(text, place string) bool {
	occurrence := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(place) + `\b`)
	for _, loc := range occurrence.FindAllStringIndex(text, -1) {
		if placePrepositionTail.MatchString(text[:loc[0]]) {
			return true
		}
	}
	return false
}

func (e *LocationExtractor) widen(text, place string) string {
	needle := strings.ToLower(place)
	for _, rule := range e.rules {
		for _, loc := range rule.matcher.FindAllStringSubmatchIndex(text, -1) {
			span := cleanLocation(rule.extract(text, loc))
			if span != "" && strings.Contains(strings.ToLower(span), needle) {
				return span
			}
		}
	}
	return ""
}

func captureGroup(text string, loc []int) string {
	if len(loc) < 4 || loc[2] < 0 {
		return ""
	}
	return text[loc[2]:loc[3]]
}

// phraseAfterMatch читает слова после предлога до первого служебного слова
func phraseAfterMatch(text string, loc []int) string {
	rest := phraseWordsPattern.FindString(text[loc[1]:])
	var words []string
	for _, word := range strings.Fields(rest) {
		if phraseStopWords[strings.ToLower(word)] {
			break
		}
		words = append(words, word)
	}
	for len(words) > 0 && leadingArticles[strings.ToLower(words[0])] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// cleanLocation обрезает пробелы и один завершающий знак препинания
func cleanLocation(s string) string {
	s = strings.TrimSpace(s)
	if n := len(s); n > 0 && strings.ContainsRune(".,!?", rune(s[n-1])) {
		s = strings.TrimSpace(s[:n-1])
	}
	return s
}
