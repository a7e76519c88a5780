// Package vocabulary provides the built-in IELTS vocabulary bank used for
// definition lookups and standalone word-recognition drills.
//
// The bank ships compiled into the binary, so lookups never touch disk
// and the server has no data files to deploy.
package vocabulary

import (
	"math/rand"
	"strings"
	"sync"
)

// Entry is one vocabulary bank word with its learner-facing metadata.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
	Level      string `json:"level"`      // basic, intermediate, advanced
	Frequency  string `json:"frequency"`  // high, medium, low
}

// PracticeWord is one option in a vocabulary recognition drill. Words
// taken from the learner's transcript carry their first position in it;
// bank distractors have Position -1.
type PracticeWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	IsFromText bool   `json:"is_from_text"`
	Position   int    `json:"position"`
}

// Stats summarizes the vocabulary bank composition.
type Stats struct {
	TotalCount  int            `json:"total_count"`
	Categories  map[string]int `json:"categories"`
	Levels      map[string]int `json:"levels"`
	Frequencies map[string]int `json:"frequencies"`
}

// Service answers vocabulary queries against the built-in bank.
type Service struct {
	// Go Pattern: sync.Once guarantees the index is built exactly once,
	// even with concurrent callers — lazy initialization without locks
	// on the hot path.
	once    sync.Once
	byWord  map[string]*Entry
	entries []Entry
}

// NewService creates a vocabulary service over the built-in bank.
func NewService() *Service {
	return &Service{}
}

func (s *Service) load() {
	s.once.Do(func() {
		s.entries = entries
		s.byWord = make(map[string]*Entry, len(entries))
		for i := range s.entries {
			s.byWord[strings.ToLower(s.entries[i].Word)] = &s.entries[i]
		}
	})
}

// Stats aggregates bank counts by category, level, and frequency.
func (s *Service) Stats() Stats {
	s.load()

	stats := Stats{
		TotalCount:  len(s.entries),
		Categories:  make(map[string]int),
		Levels:      make(map[string]int),
		Frequencies: make(map[string]int),
	}
	for _, e := range s.entries {
		stats.Categories[e.Category]++
		stats.Levels[e.Level]++
		stats.Frequencies[e.Frequency]++
	}
	return stats
}

// Definition looks up a word's definition, case-insensitively.
func (s *Service) Definition(word string) (string, bool) {
	s.load()

	e, ok := s.byWord[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	return e.Definition, true
}

// Filter returns bank entries matching the given category, level, and
// frequency. Empty filter values match everything; limit <= 0 means no limit.
func (s *Service) Filter(category, level, frequency string, limit int) []Entry {
	s.load()

	var matched []Entry
	for _, e := range s.entries {
		if category != "" && e.Category != category {
			continue
		}
		if level != "" && e.Level != level {
			continue
		}
		if frequency != "" && e.Frequency != frequency {
			continue
		}
		matched = append(matched, e)
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched
}

// PracticeWords builds a word-recognition drill from a transcript:
// up to fromText words that actually appeared (in order of first
// appearance), padded with bank distractors up to total, then shuffled.
func (s *Service) PracticeWords(transcriptWords []string, total, fromText int) []PracticeWord {
	s.load()

	if total <= 0 {
		total = 100
	}
	if fromText <= 0 {
		fromText = 15
	}

	var practice []PracticeWord
	used := make(map[string]bool)

	// Transcript words first, deduplicated but keeping first-seen order
	for i, w := range transcriptWords {
		word := strings.ToLower(w)
		if len(word) <= 2 || used[word] || !isAlpha(word) {
			continue
		}
		used[word] = true

		definition := ""
		if e, ok := s.byWord[word]; ok {
			definition = e.Definition
		}
		practice = append(practice, PracticeWord{
			Word:       word,
			Definition: definition,
			IsFromText: true,
			Position:   i,
		})
		if len(practice) == fromText {
			break
		}
	}

	// Pad with bank distractors the transcript didn't use
	if remaining := total - len(practice); remaining > 0 {
		pool := make([]*Entry, 0, len(s.entries))
		for i := range s.entries {
			if !used[strings.ToLower(s.entries[i].Word)] {
				pool = append(pool, &s.entries[i])
			}
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if remaining > len(pool) {
			remaining = len(pool)
		}
		for _, e := range pool[:remaining] {
			practice = append(practice, PracticeWord{
				Word:       strings.ToLower(e.Word),
				Definition: e.Definition,
				IsFromText: false,
				Position:   -1,
			})
		}
	}

	rand.Shuffle(len(practice), func(i, j int) { practice[i], practice[j] = practice[j], practice[i] })
	return practice
}

func isAlpha(word string) bool {
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(word) > 0
}
