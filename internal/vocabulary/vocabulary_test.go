package vocabulary

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	s := NewService()
	stats := s.Stats()

	if stats.TotalCount != len(entries) {
		t.Errorf("TotalCount = %d, want %d", stats.TotalCount, len(entries))
	}

	categorySum := 0
	for _, n := range stats.Categories {
		categorySum += n
	}
	if categorySum != stats.TotalCount {
		t.Errorf("category counts sum to %d, want %d", categorySum, stats.TotalCount)
	}

	for _, level := range []string{"basic", "intermediate", "advanced"} {
		if stats.Levels[level] == 0 {
			t.Errorf("no entries at level %q", level)
		}
	}
}

func TestDefinition(t *testing.T) {
	s := NewService()

	tests := []struct {
		word  string
		found bool
	}{
		{"climate", true},
		{"CLIMATE", true}, // case-insensitive
		{"Algorithm", true},
		{"zzzzz", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			def, ok := s.Definition(tt.word)
			if ok != tt.found {
				t.Fatalf("Definition(%q) found = %v, want %v", tt.word, ok, tt.found)
			}
			if ok && def == "" {
				t.Errorf("Definition(%q) returned empty definition", tt.word)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	s := NewService()

	t.Run("by category", func(t *testing.T) {
		matched := s.Filter("environment", "", "", 0)
		if len(matched) == 0 {
			t.Fatal("no environment entries matched")
		}
		for _, e := range matched {
			if e.Category != "environment" {
				t.Errorf("entry %q has category %q", e.Word, e.Category)
			}
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		for _, e := range s.Filter("technology", "advanced", "", 0) {
			if e.Category != "technology" || e.Level != "advanced" {
				t.Errorf("entry %q: category=%q level=%q", e.Word, e.Category, e.Level)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		if matched := s.Filter("", "", "", 5); len(matched) != 5 {
			t.Errorf("limit 5 returned %d entries", len(matched))
		}
	})

	t.Run("no match", func(t *testing.T) {
		if matched := s.Filter("astrology", "", "", 0); len(matched) != 0 {
			t.Errorf("bogus category matched %d entries", len(matched))
		}
	})
}

func TestPracticeWords(t *testing.T) {
	s := NewService()
	transcript := strings.Fields("the climate emission renewable sustainable pollution energy lecture")

	words := s.PracticeWords(transcript, 30, 5)

	if len(words) != 30 {
		t.Fatalf("got %d practice words, want 30", len(words))
	}

	fromText := 0
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w.Word] {
			t.Errorf("duplicate practice word %q", w.Word)
		}
		seen[w.Word] = true

		if w.IsFromText {
			fromText++
			if w.Position < 0 {
				t.Errorf("transcript word %q has position %d", w.Word, w.Position)
			}
		} else if w.Position != -1 {
			t.Errorf("bank distractor %q has position %d, want -1", w.Word, w.Position)
		}
	}

	if fromText != 5 {
		t.Errorf("got %d transcript words, want 5", fromText)
	}
}

func TestPracticeWordsSkipsShortAndNonAlpha(t *testing.T) {
	s := NewService()
	words := s.PracticeWords([]string{"a", "of", "123", "it's", "climate"}, 10, 5)

	fromText := 0
	for _, w := range words {
		if w.IsFromText {
			fromText++
			if w.Word != "climate" {
				t.Errorf("unexpected transcript word %q", w.Word)
			}
		}
	}
	if fromText != 1 {
		t.Errorf("got %d transcript words, want 1 (only %q qualifies)", fromText, "climate")
	}
}

func TestPracticeWordsDefaults(t *testing.T) {
	s := NewService()
	// Non-positive totals fall back to defaults; the bank is smaller than
	// the default 100, so the result is transcript words + whole bank.
	words := s.PracticeWords([]string{"climate"}, 0, 0)
	if len(words) == 0 {
		t.Fatal("defaults produced no practice words")
	}
	if len(words) > 100 {
		t.Errorf("got %d words, want at most 100", len(words))
	}
}
