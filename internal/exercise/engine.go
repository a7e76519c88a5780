// Package exercise turns a raw transcript into a clickable word-selection
// exercise: it picks the "correct" words (keywords), sources plausible wrong
// answers (distractors) at a controlled ratio, spreads both evenly across the
// audio timeline, and emits a single shuffled option list for the client.
//
// The pipeline runs Tokenize → keyword selection → distractor pooling →
// temporal segmentation → assembly. Every call is a pure transformation from
// inputs to outputs; the only state the engine holds is the read-only
// distractor lexicon, so concurrent calls need no locking.
package exercise

import (
	"context"
	"log"
	"math"
	"sort"
)

// Options groups the product-tuning constants of the engine. The defaults
// come straight from classroom tuning, not from the problem structure —
// override them per deployment, don't derive "better" ones.
type Options struct {
	KeywordsPerMinute    int     // keyword target per minute of audio
	DefaultKeywordTarget int     // keyword target when the duration is unknown
	DistractorRatio      int     // distractors per keyword
	KeywordsPerSegment   int     // keywords a time segment should hold
	MinSegmentSeconds    int     // lower clamp for segment duration
	MaxSegmentSeconds    int     // upper clamp for segment duration
	ContextShare         float64 // fraction of distractors drawn from the transcript itself
	MaxLexiconDraw       int     // cap on a single lexicon sampling pass
}

// DefaultOptions returns the standard tuning values.
func DefaultOptions() Options {
	return Options{
		KeywordsPerMinute:    15,
		DefaultKeywordTarget: 50,
		DistractorRatio:      3,
		KeywordsPerSegment:   4,
		MinSegmentSeconds:    30,
		MaxSegmentSeconds:    60,
		ContextShare:         0.3,
		MaxLexiconDraw:       400,
	}
}

// ExerciseOption is a single entry in the rendered option list.
// TimeSegment is nil when the audio duration was unknown at synthesis time.
type ExerciseOption struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	IsKeyword   bool   `json:"is_keyword"`
	TimeSegment *int   `json:"time_segment,omitempty"`
}

// Ranker selects up to target keywords from a transcript. The auxiliary text
// (accompanying question sheet) may be empty. Implementations live on both
// sides of the network boundary: the local frequency ranker never fails,
// while the remote one may — callers treat any error as "use the fallback".
type Ranker interface {
	Rank(ctx context.Context, transcript, auxiliary string, target int) ([]string, error)
}

// Engine synthesizes exercise options from transcripts. Construct once and
// share; it is safe for concurrent use.
type Engine struct {
	opts    Options
	lexicon *Lexicon
	remote  Ranker // optional; nil means local ranking only
}

// New creates an Engine over the given lexicon with default tuning.
func New(lexicon *Lexicon) *Engine {
	return NewWithOptions(lexicon, DefaultOptions())
}

// NewWithOptions creates an Engine with custom tuning values. Zero fields
// fall back to their defaults.
func NewWithOptions(lexicon *Lexicon, opts Options) *Engine {
	def := DefaultOptions()
	if opts.KeywordsPerMinute <= 0 {
		opts.KeywordsPerMinute = def.KeywordsPerMinute
	}
	if opts.DefaultKeywordTarget <= 0 {
		opts.DefaultKeywordTarget = def.DefaultKeywordTarget
	}
	if opts.DistractorRatio <= 0 {
		opts.DistractorRatio = def.DistractorRatio
	}
	if opts.KeywordsPerSegment <= 0 {
		opts.KeywordsPerSegment = def.KeywordsPerSegment
	}
	if opts.MinSegmentSeconds <= 0 {
		opts.MinSegmentSeconds = def.MinSegmentSeconds
	}
	if opts.MaxSegmentSeconds <= 0 {
		opts.MaxSegmentSeconds = def.MaxSegmentSeconds
	}
	if opts.ContextShare <= 0 {
		opts.ContextShare = def.ContextShare
	}
	if opts.MaxLexiconDraw <= 0 {
		opts.MaxLexiconDraw = def.MaxLexiconDraw
	}
	return &Engine{opts: opts, lexicon: lexicon}
}

// SetRemoteRanker installs an optional remote ranking collaborator. The
// engine falls back to local frequency ranking whenever the remote one
// errors or returns nothing.
func (e *Engine) SetRemoteRanker(r Ranker) {
	e.remote = r
}

// keywordTarget derives how many keywords an exercise should have. The
// target rounds to zero for audio under ~2 seconds — such clips cannot
// host an exercise, and callers treat zero keywords as exactly that.
func (e *Engine) keywordTarget(durationSeconds float64) int {
	if durationSeconds <= 0 {
		return e.opts.DefaultKeywordTarget
	}
	minutes := durationSeconds / 60
	return int(math.Round(minutes * float64(e.opts.KeywordsPerMinute)))
}

// ExtractKeywords selects the "correct answer" words for a transcript.
// auxiliary is the optional question-sheet text; durationSeconds <= 0 means
// the audio duration is unknown. An empty result is not an error — it means
// no exercise is possible for this transcript.
//
// When a remote ranker is installed it is tried first; any failure, empty
// result, or malformed response silently falls back to local frequency
// ranking. That fallback is expected steady-state behavior, not a fault.
func (e *Engine) ExtractKeywords(ctx context.Context, transcript, auxiliary string, durationSeconds float64) []string {
	target := e.keywordTarget(durationSeconds)
	if target < 1 {
		return nil
	}

	if e.remote != nil {
		keywords, err := e.remote.Rank(ctx, transcript, auxiliary, target)
		if err == nil && len(keywords) > 0 {
			return dedupe(keywords)
		}
		if err != nil {
			log.Printf("⚠️  Remote keyword ranking unavailable, using local ranking: %v", err)
		}
	}

	return e.rankByFrequency(transcript, target)
}

// rankByFrequency is the always-available local ranking path: candidate
// tokens longer than 3 characters that are not stop words, retained when
// they appear at least twice or exceed 5 characters, ordered by frequency
// then length. Deterministic for a given transcript.
func (e *Engine) rankByFrequency(transcript string, target int) []string {
	tokens := Tokenize(transcript)

	freq := make(map[string]int)
	var order []string // first-seen order keeps the sort stable across calls
	for _, tok := range tokens {
		if len(tok) <= 3 || IsStopWord(tok) {
			continue
		}
		if _, seen := freq[tok]; !seen {
			order = append(order, tok)
		}
		freq[tok]++
	}

	candidates := order[:0:0]
	for _, w := range order {
		if freq[w] >= 2 || len(w) > 5 {
			candidates = append(candidates, w)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if freq[candidates[i]] != freq[candidates[j]] {
			return freq[candidates[i]] > freq[candidates[j]]
		}
		return len(candidates[i]) > len(candidates[j])
	})

	if len(candidates) > target {
		candidates = candidates[:target]
	}
	return candidates
}

// GenerateExerciseOptions builds the final option list for a transcript.
// totalOptions <= 0 means "use the standard distractor ratio"; otherwise the
// distractor count is totalOptions minus the keyword count. durationSeconds
// <= 0 produces an unsegmented exercise (no TimeSegment on any option).
//
// Zero keywords yield an empty list — the caller signals "no usable
// keywords" to its client. No failure mode aborts; every stage degrades to
// a smaller but valid result.
func (e *Engine) GenerateExerciseOptions(keywords []string, transcript string, totalOptions int, durationSeconds float64) []ExerciseOption {
	keywords = dedupe(keywords)
	if len(keywords) == 0 {
		return []ExerciseOption{}
	}

	needed := len(keywords) * e.opts.DistractorRatio
	if totalOptions > 0 {
		needed = totalOptions - len(keywords)
		if needed < 0 {
			needed = 0
		}
	}

	distractors := e.buildDistractors(keywords, transcript, needed)
	plan := e.planSegments(keywords, distractors, durationSeconds)
	return assemble(keywords, distractors, plan)
}

// dedupe removes duplicate words, preserving first-seen order.
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
