// token.go normalizes transcript text into a clean token stream.
package exercise

import "strings"

// Tokenize lower-cases the text, replaces every character outside [a-z0-9]
// with a space, and splits on whitespace runs. Empty input yields an empty
// slice. Deterministic and side-effect-free.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, lowered)

	return strings.Fields(normalized)
}
