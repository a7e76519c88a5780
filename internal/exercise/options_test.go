// options_test.go — Tests for distractor pooling and option assembly.
package exercise

import (
	"testing"
)

const distractorTranscript = `Welcome to the lecture on renewable energy. Solar panels convert
sunlight into electricity while wind turbines capture kinetic energy. Both technologies
reduce carbon emissions and support a sustainable future for the planet.`

func TestBuildDistractors(t *testing.T) {
	e := New(NewLexicon())
	keywords := []string{"energy", "solar", "turbines", "emissions"}

	got := e.buildDistractors(keywords, distractorTranscript, len(keywords)*3)

	if len(got) != 12 {
		t.Errorf("buildDistractors returned %d words, want 12", len(got))
	}

	keywordSet := map[string]bool{}
	for _, k := range keywords {
		keywordSet[k] = true
	}
	seen := map[string]bool{}
	for _, d := range got {
		if keywordSet[d] {
			t.Errorf("distractor %q is a keyword", d)
		}
		if seen[d] {
			t.Errorf("duplicate distractor %q", d)
		}
		seen[d] = true
	}
}

func TestBuildDistractorsExhaustedLexicon(t *testing.T) {
	// A tiny lexicon plus a tiny transcript cannot satisfy the request;
	// the builder degrades to fewer distractors instead of failing.
	lex := NewLexiconFromWords([]string{"red", "blue", "green"})
	e := New(lex)

	got := e.buildDistractors([]string{"sunshine"}, "the sun shines", 50)

	if len(got) >= 50 {
		t.Fatalf("expected a short pool, got %d distractors", len(got))
	}
	for _, d := range got {
		if d == "sunshine" {
			t.Error("keyword leaked into distractors")
		}
	}
}

func TestBuildDistractorsZeroNeeded(t *testing.T) {
	e := New(NewLexicon())
	if got := e.buildDistractors([]string{"ocean"}, distractorTranscript, 0); len(got) != 0 {
		t.Errorf("needed=0 returned %d distractors", len(got))
	}
}

func TestGenerateExerciseOptions(t *testing.T) {
	e := New(NewLexicon())
	keywords := []string{"energy", "solar", "turbines", "emissions", "sustainable"}

	options := e.GenerateExerciseOptions(keywords, distractorTranscript, 0, 0)

	// Total = keywords + ratio * keywords.
	want := len(keywords) * (1 + DefaultOptions().DistractorRatio)
	if len(options) != want {
		t.Errorf("got %d options, want %d", len(options), want)
	}

	// IDs are sequential in output order.
	for i, opt := range options {
		if opt.ID != i {
			t.Errorf("option %d has ID %d", i, opt.ID)
		}
	}

	// The keyword flags recover exactly the keyword set, and no word repeats.
	marked := map[string]bool{}
	seen := map[string]bool{}
	for _, opt := range options {
		if seen[opt.Text] {
			t.Errorf("word %q appears twice in the option list", opt.Text)
		}
		seen[opt.Text] = true
		if opt.IsKeyword {
			marked[opt.Text] = true
		}
	}
	if len(marked) != len(keywords) {
		t.Errorf("marked %d keywords, want %d", len(marked), len(keywords))
	}
	for _, k := range keywords {
		if !marked[k] {
			t.Errorf("keyword %q missing from options", k)
		}
	}

	// Without a duration, no option carries a time segment.
	for _, opt := range options {
		if opt.TimeSegment != nil {
			t.Errorf("option %q has TimeSegment %d without a duration", opt.Text, *opt.TimeSegment)
		}
	}
}

func TestGenerateExerciseOptionsSegmented(t *testing.T) {
	e := New(NewLexicon())
	keywords := []string{"energy", "solar", "turbines", "emissions", "sustainable", "carbon", "planet", "electricity"}

	options := e.GenerateExerciseOptions(keywords, distractorTranscript, 0, 240)

	// 8 keywords → 2 ideal segments of 120s, clamped to 60s → 4 segments.
	segmentCount := 4
	segmentSeen := make(map[int]bool)
	for _, opt := range options {
		if opt.TimeSegment == nil {
			t.Fatalf("option %q missing TimeSegment in segmented mode", opt.Text)
		}
		if *opt.TimeSegment < 0 || *opt.TimeSegment >= segmentCount {
			t.Errorf("option %q in segment %d, out of [0,%d)", opt.Text, *opt.TimeSegment, segmentCount)
		}
		if opt.IsKeyword {
			segmentSeen[*opt.TimeSegment] = true
		}
	}

	// Segment 0 always holds at least one keyword.
	if !segmentSeen[0] {
		t.Error("segment 0 holds no keywords")
	}

	// Options are emitted in ascending segment order.
	last := 0
	for _, opt := range options {
		if *opt.TimeSegment < last {
			t.Fatalf("segment order regressed: %d after %d", *opt.TimeSegment, last)
		}
		last = *opt.TimeSegment
	}
}

func TestGenerateExerciseOptionsNoKeywords(t *testing.T) {
	e := New(NewLexicon())
	options := e.GenerateExerciseOptions(nil, distractorTranscript, 0, 0)
	if len(options) != 0 {
		t.Errorf("no keywords should produce no options, got %d", len(options))
	}
}

func TestGenerateExerciseOptionsTotalOverride(t *testing.T) {
	e := New(NewLexicon())
	keywords := []string{"energy", "solar"}

	options := e.GenerateExerciseOptions(keywords, distractorTranscript, 20, 0)
	if len(options) != 20 {
		t.Errorf("totalOptions=20 produced %d options", len(options))
	}
}
