// lexicon_test.go — Unit tests for the distractor lexicon.
package exercise

import "testing"

func TestLexiconDeduplicatesOnLoad(t *testing.T) {
	lex := NewLexiconFromWords([]string{"Apple", "apple", "banana", "", "BANANA", "cherry"})
	if got := lex.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3 after deduplication", got)
	}
}

func TestLexiconSample(t *testing.T) {
	lex := NewLexiconFromWords([]string{"alpha", "beta", "gamma", "delta", "epsilon"})

	t.Run("returns distinct words", func(t *testing.T) {
		got := lex.Sample(5, nil)
		seen := make(map[string]bool)
		for _, w := range got {
			if seen[w] {
				t.Errorf("Sample returned duplicate word %q", w)
			}
			seen[w] = true
		}
		if len(got) != 5 {
			t.Errorf("Sample(5, nil) returned %d words, want 5", len(got))
		}
	})

	t.Run("honors exclusions", func(t *testing.T) {
		got := lex.Sample(5, []string{"alpha", "Beta"})
		if len(got) != 3 {
			t.Errorf("Sample(5, exclude 2) returned %d words, want 3", len(got))
		}
		for _, w := range got {
			if w == "alpha" || w == "beta" {
				t.Errorf("Sample returned excluded word %q", w)
			}
		}
	})

	t.Run("short pool returns fewer than requested", func(t *testing.T) {
		got := lex.Sample(100, nil)
		if len(got) != 5 {
			t.Errorf("Sample(100) returned %d words, want 5 (pool size)", len(got))
		}
	})

	t.Run("zero count returns nothing", func(t *testing.T) {
		if got := lex.Sample(0, nil); len(got) != 0 {
			t.Errorf("Sample(0) returned %d words, want 0", len(got))
		}
	})
}

func TestBuiltinLexiconSize(t *testing.T) {
	lex := NewLexicon()
	// The curated list holds several hundred distinct common words.
	if lex.Size() < 500 {
		t.Errorf("builtin lexicon has %d words, expected at least 500", lex.Size())
	}
}
