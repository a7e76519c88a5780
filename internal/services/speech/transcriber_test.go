package speech

import (
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		wantErr  bool
	}{
		{
			name:     "text field",
			body:     `{"text": "hello world"}`,
			wantText: "hello world",
		},
		{
			name:     "transcription field",
			body:     `{"transcription": "hello world"}`,
			wantText: "hello world",
		},
		{
			name:     "text wins over transcription",
			body:     `{"text": "primary", "transcription": "secondary"}`,
			wantText: "primary",
		},
		{
			name:     "bare JSON string",
			body:     `"just a string response"`,
			wantText: "just a string response",
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			body:    `<html>gateway error</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseResponse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseResponse(%q) expected error, got %+v", tt.body, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResponse(%q) unexpected error: %v", tt.body, err)
			}
			if result.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", result.Text, tt.wantText)
			}
			if result.Duration <= 0 {
				t.Errorf("Duration = %v, want > 0 (estimated)", result.Duration)
			}
		})
	}
}

func TestParseResponseKeepsAPIDuration(t *testing.T) {
	result, err := parseResponse([]byte(`{"text": "one two three", "duration": 42.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Duration != 42.5 {
		t.Errorf("Duration = %v, want 42.5 (from API, not estimated)", result.Duration)
	}
}

func TestEstimateDuration(t *testing.T) {
	// 150 words at 150 wpm should estimate to one minute
	text := strings.Repeat("word ", 150)
	if got := EstimateDuration(text); got != 60 {
		t.Errorf("EstimateDuration(150 words) = %v, want 60", got)
	}

	if got := EstimateDuration(""); got != 0 {
		t.Errorf("EstimateDuration(empty) = %v, want 0", got)
	}
}

func TestSampleTranscript(t *testing.T) {
	result := SampleTranscript()
	if result.Text == "" {
		t.Fatal("SampleTranscript returned empty text")
	}
	if result.Duration <= 0 {
		t.Errorf("SampleTranscript Duration = %v, want > 0", result.Duration)
	}

	found := false
	for _, sample := range sampleTranscripts {
		if result.Text == sample {
			found = true
			break
		}
	}
	if !found {
		t.Error("SampleTranscript text is not one of the canned samples")
	}
}

func TestTranscriberNotConfigured(t *testing.T) {
	tr := NewTranscriber("", "")
	if tr.IsConfigured() {
		t.Error("IsConfigured() = true with empty API key")
	}
	if tr.model != DefaultModel {
		t.Errorf("empty model should default to %q, got %q", DefaultModel, tr.model)
	}
}
