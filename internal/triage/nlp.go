package triage

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/sirupsen/logrus"
)

// Analysis - результат одного прохода разметки текста
type Analysis struct {
	// Phrases - последовательности существительных и последовательности прилагательных
	Phrases []string
	// Places - названия мест в порядке появления
	Places []string
}

// Analyzer размечает текст за один проход
type Analyzer interface {
	Analyze(text string) Analysis
}

// слова, которые prose часто помечает как GPE в начале письма
var nonPlaceWords = map[string]bool{
	"hello": true, "hi": true, "hey": true, "dear": true, "thank": true, "thanks": true,
	"please": true, "patient": true, "doctor": true, "sir": true, "madam": true,
	"regards": true, "help": true, "urgent": true,
}

// ProseAnalyzer - реализация Analyzer на основе prose (POS-теги Penn Treebank и NER).
// Модель загружается один раз и переиспользуется всеми вызовами.
type ProseAnalyzer struct {
	model  *prose.Model
	logger *logrus.Logger
}

func NewProseAnalyzer(logger *logrus.Logger) *ProseAnalyzer {
	return &ProseAnalyzer{
		model:  prose.ModelFromData("triage"),
		logger: logger,
	}
}

// Analyze строит один документ prose и достаёт из него фразы и места
func (a *ProseAnalyzer) Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{}
	}
	doc, err := prose.NewDocument(text, prose.UsingModel(a.model))
	if err != nil {
		a.logger.WithError(err).Warn("Failed to analyze text")
		return Analysis{}
	}
	return Analysis{
		Phrases: tokenPhrases(doc.Tokens()),
		Places:  documentPlaces(doc),
	}
}

func tokenPhrases(tokens []prose.Token) []string {
	var (
		phrases []string
		run     []string
		runKind string
	)
	flush := func() {
		if len(run) > 0 {
			phrases = append(phrases, strings.Join(run, " "))
		}
		run = run[:0]
		runKind = ""
	}

	for _, tok := range tokens {
		kind := tagKind(tok.Tag)
		if kind == "" || kind != runKind {
			flush()
		}
		if kind != "" {
			run = append(run, tok.Text)
			runKind = kind
		}
	}
	flush()
	return phrases
}

// documentPlaces возвращает GPE-сущности без однословных сущностей в начале
// предложения и без служебных слов
func documentPlaces(doc *prose.Document) []string {
	var openers []string
	for _, sentence := range doc.Sentences() {
		if s := strings.TrimSpace(sentence.Text); s != "" {
			openers = append(openers, s)
		}
	}

	var places []string
	for _, ent := range doc.Entities() {
		if ent.Label != "GPE" {
			continue
		}
		words := strings.Fields(ent.Text)
		if len(words) == 0 || nonPlaceWords[strings.ToLower(words[0])] || phraseStopWords[strings.ToLower(words[0])] {
			continue
		}
		if len(words) == 1 && opensSentence(openers, ent.Text) {
			continue
		}
		places = append(places, ent.Text)
	}
	return places
}

func opensSentence(sentences []string, word string) bool {
	for _, s := range sentences {
		if strings.HasPrefix(s, word) {
			return true
		}
	}
	return false
}

func tagKind(tag string) string {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return "noun"
	case strings.HasPrefix(tag, "JJ"):
		return "adjective"
	}
	return ""
}
