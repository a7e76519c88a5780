// token_test.go — Unit tests for transcript tokenization.
package exercise

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple sentence",
			input: "The cat sat on the mat.",
			want:  []string{"the", "cat", "sat", "on", "the", "mat"},
		},
		{
			name:  "punctuation becomes whitespace",
			input: "hello, world! it's-fine",
			want:  []string{"hello", "world", "it", "s", "fine"},
		},
		{
			name:  "mixed case and digits",
			input: "Route 66 Goes WEST",
			want:  []string{"route", "66", "goes", "west"},
		},
		{
			name:  "whitespace runs collapse",
			input: "  spaced \t out \n words  ",
			want:  []string{"spaced", "out", "words"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "?!... ---",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	input := "Climate change is one of the most pressing challenges facing our planet."
	first := Tokenize(input)
	second := Tokenize(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenize is not deterministic: %v vs %v", first, second)
	}
}
