package ranking

import (
	"context"
	"strings"
	"testing"
)

func TestParseWordList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  int
		want    []string
	}{
		{
			name:    "plain lines",
			content: "climate\nemission\nrenewable",
			target:  10,
			want:    []string{"climate", "emission", "renewable"},
		},
		{
			name:    "numbered list",
			content: "1. climate\n2. emission\n3. renewable",
			target:  10,
			want:    []string{"climate", "emission", "renewable"},
		},
		{
			name:    "bullets and casing",
			content: "- Climate\n* EMISSION\n• renewable",
			target:  10,
			want:    []string{"climate", "emission", "renewable"},
		},
		{
			name:    "truncates to target",
			content: "climate\nemission\nrenewable\nsustainable",
			target:  2,
			want:    []string{"climate", "emission"},
		},
		{
			name:    "skips duplicates and short words",
			content: "climate\nclimate\nof\nemission",
			target:  10,
			want:    []string{"climate", "emission"},
		},
		{
			name:    "skips chatter lines",
			content: "Here are the keywords:\nclimate\nemission",
			target:  10,
			want:    []string{"climate", "emission"},
		},
		{
			name:    "empty response",
			content: "",
			target:  10,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWordList(tt.content, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("parseWordList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseWordList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildPromptTruncation(t *testing.T) {
	longTranscript := strings.Repeat("a", maxTranscriptChars+500)
	longAuxiliary := strings.Repeat("b", maxAuxiliaryChars+500)

	prompt := buildPrompt(longTranscript, longAuxiliary, 20)

	if strings.Contains(prompt, strings.Repeat("a", maxTranscriptChars+1)) {
		t.Error("transcript was not truncated")
	}
	if strings.Contains(prompt, strings.Repeat("b", maxAuxiliaryChars+1)) {
		t.Error("auxiliary text was not truncated")
	}
	if !strings.Contains(prompt, "20") {
		t.Error("prompt does not mention the target count")
	}
}

func TestBuildPromptWithoutAuxiliary(t *testing.T) {
	prompt := buildPrompt("some transcript", "", 10)
	if strings.Contains(prompt, "questions below") {
		t.Error("prompt mentions questions when none were provided")
	}
}

func TestRankNotConfigured(t *testing.T) {
	s := New("", "test-model")
	if s.IsConfigured() {
		t.Error("IsConfigured() = true with empty API key")
	}

	if _, err := s.Rank(context.Background(), "transcript", "", 10); err == nil {
		t.Error("Rank() with no API key should return an error")
	}
}
