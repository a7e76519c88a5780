// lexicon.go provides the static distractor word pool.
//
// Go Pattern: sync.Once gives us lazy, thread-safe one-time initialization.
// The lexicon data never changes after load, so concurrent Sample calls
// need no further locking — they only read.
package exercise

import (
	"math/rand"
	"strings"
	"sync"
)

// Lexicon is a read-only pool of common English words used as generic
// distractors. Create one at process start and share it; all methods are
// safe for concurrent use.
type Lexicon struct {
	once  sync.Once
	raw   []string
	words []string
}

// NewLexicon returns a Lexicon backed by the built-in distractor word list.
// The list is normalized (lower-cased, deduplicated) on first use.
func NewLexicon() *Lexicon {
	return &Lexicon{raw: distractorWords}
}

// NewLexiconFromWords returns a Lexicon over a caller-supplied word list.
// Useful in tests and for swapping in domain-specific pools.
func NewLexiconFromWords(words []string) *Lexicon {
	return &Lexicon{raw: words}
}

// load normalizes the raw word list exactly once.
func (l *Lexicon) load() {
	l.once.Do(func() {
		seen := make(map[string]bool, len(l.raw))
		for _, w := range l.raw {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			l.words = append(l.words, w)
		}
	})
}

// Size returns the number of distinct words in the lexicon.
func (l *Lexicon) Size() int {
	l.load()
	return len(l.words)
}

// Sample returns up to count distinct words drawn uniformly at random from
// the lexicon, skipping any word in exclude. When the pool (minus exclusions)
// is smaller than count, every available word is returned — callers must
// tolerate short results.
func (l *Lexicon) Sample(count int, exclude []string) []string {
	l.load()
	if count <= 0 {
		return nil
	}

	excluded := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		excluded[strings.ToLower(w)] = true
	}

	available := make([]string, 0, len(l.words))
	for _, w := range l.words {
		if !excluded[w] {
			available = append(available, w)
		}
	}

	if count > len(available) {
		count = len(available)
	}

	// Partial Fisher–Yates: after i swaps the first i entries are a uniform
	// random sample, so we only shuffle as far as we need.
	for i := 0; i < count; i++ {
		j := i + rand.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}

	return available[:count]
}
