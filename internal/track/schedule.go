// Package track holds the completeness schedule: which language pairs the
// sentence-level track accepts and which year maps to which pair on the
// document-level track. The schedule is configuration data, not a hardcoded
// constant, so future task editions can extend it without code changes.
package track

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"terminology-submission-validator/internal/models"
)

// Schedule describes the expected submission matrix for both tracks.
type Schedule struct {
	// SentencePairs are the language pairs accepted on the sentence-level
	// track, in canonical order.
	SentencePairs []models.LangPair `yaml:"sentence_pairs"`
	// DocumentYears maps a document-level year token to its language pair.
	DocumentYears map[string]models.LangPair `yaml:"document_years"`
}

// Default returns the WMT2025 schedule: three English-source pairs on the
// sentence-level track, ten years alternating enzh/zhen on the
// document-level track.
func Default() Schedule {
	years := make(map[string]models.LangPair, 10)
	for i := 0; i < 10; i++ {
		pair := models.LangPair("enzh")
		if i%2 == 1 {
			pair = "zhen"
		}
		years[fmt.Sprintf("%d", 2015+i)] = pair
	}
	return Schedule{
		SentencePairs: []models.LangPair{"enes", "enru", "ende"},
		DocumentYears: years,
	}
}

// Load reads a schedule override from a YAML file.
func Load(path string) (Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("read schedule: %w", err)
	}
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schedule{}, fmt.Errorf("parse schedule %s: %w", path, err)
	}
	if len(s.SentencePairs) == 0 && len(s.DocumentYears) == 0 {
		return Schedule{}, fmt.Errorf("schedule %s defines no tracks", path)
	}
	return s, nil
}

// AllowsPair reports whether the sentence-level track accepts the pair.
func (s Schedule) AllowsPair(p models.LangPair) bool {
	for _, allowed := range s.SentencePairs {
		if allowed == p {
			return true
		}
	}
	return false
}

// YearPair returns the language pair scheduled for a document-level year.
func (s Schedule) YearPair(year string) (models.LangPair, bool) {
	p, ok := s.DocumentYears[year]
	return p, ok
}

// Years returns the scheduled document-level years in sorted order.
// Completeness errors must be deterministic, so callers iterate this
// instead of the map.
func (s Schedule) Years() []string {
	years := make([]string, 0, len(s.DocumentYears))
	for y := range s.DocumentYears {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
