// Package vocabulary loads the fixed reference lists used by triage and
// auto-reply composition. The data is read once at startup and never mutated.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultData []byte

var (
	ErrNoSymptoms     = errors.New("vocabulary: symptom list is empty")
	ErrNoFallbackTips = errors.New("vocabulary: fallback tips are empty")
)

// Vocabulary - справочные списки симптомов, критических симптомов и советов
type Vocabulary struct {
	Symptoms         []string            `yaml:"symptoms"`
	CriticalSymptoms []string            `yaml:"critical_symptoms"`
	HealthTips       map[string][]string `yaml:"health_tips"`
	FallbackTips     []string            `yaml:"fallback_tips"`
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
	defaultErr   error
)

// Default возвращает встроенный словарь. Разбирается один раз.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab, defaultErr = Parse(defaultData)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded vocabulary is invalid: %v", defaultErr))
	}
	return defaultVocab
}

// Load читает словарь из файла; пустой путь означает встроенный словарь
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML и нормализует записи (нижний регистр, без дублей)
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	v.Symptoms = normalizeList(v.Symptoms)
	v.CriticalSymptoms = normalizeList(v.CriticalSymptoms)

	tips := make(map[string][]string, len(v.HealthTips))
	for symptom, list := range v.HealthTips {
		key := strings.ToLower(strings.TrimSpace(symptom))
		if key == "" {
			continue
		}
		tips[key] = append(tips[key], trimList(list)...)
	}
	v.HealthTips = tips
	v.FallbackTips = trimList(v.FallbackTips)

	if len(v.Symptoms) == 0 {
		return nil, ErrNoSymptoms
	}
	if len(v.FallbackTips) == 0 {
		return nil, ErrNoFallbackTips
	}
	return &v, nil
}

// TipsFor возвращает копию советов для симптома
func (v *Vocabulary) TipsFor(symptom string) []string {
	tips := v.HealthTips[strings.ToLower(symptom)]
	return append([]string(nil), tips...)
}

func normalizeList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
