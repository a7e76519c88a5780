package questions

import (
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
		want     string
	}{
		{
			name:     "txt file",
			filename: "questions.txt",
			data:     "1. What causes climate change?\n2. Name two renewable sources.",
			want:     "1. What causes climate change?\n2. Name two renewable sources.",
		},
		{
			name:     "markdown file",
			filename: "sheet.md",
			data:     "# Questions\n\n- What is the topic?",
			want:     "# Questions\n\n- What is the topic?",
		},
		{
			name:     "whitespace trimmed",
			filename: "q.txt",
			data:     "  \n question text \n ",
			want:     "question text",
		},
		{
			name:     "uppercase extension",
			filename: "Q.TXT",
			data:     "hello",
			want:     "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.filename, []byte(tt.data))
			if err != nil {
				t.Fatalf("ExtractText(%q) unexpected error: %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("ExtractText(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	for _, filename := range []string{"sheet.docx", "audio.mp3", "noextension"} {
		if _, err := ExtractText(filename, []byte("data")); err == nil {
			t.Errorf("ExtractText(%q) expected error for unsupported type", filename)
		}
	}
}

func TestExtractTextInvalidPDF(t *testing.T) {
	// Right extension, wrong magic bytes
	if _, err := ExtractText("sheet.pdf", []byte("not a pdf at all")); err == nil {
		t.Error("ExtractText with fake PDF content should fail validation")
	}
}

func TestExtractTextClampsLongSheets(t *testing.T) {
	long := strings.Repeat("q", MaxQuestionChars+1000)
	got, err := ExtractText("big.txt", []byte(long))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxQuestionChars {
		t.Errorf("len = %d, want clamped to %d", len(got), MaxQuestionChars)
	}
}

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid header", []byte("%PDF-1.7\n..."), true},
		{"plain text", []byte("hello world"), false},
		{"too short", []byte("%PDF"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePDF(tt.data); got != tt.want {
				t.Errorf("ValidatePDF() = %v, want %v", got, tt.want)
			}
		})
	}
}
