// distractors.go builds the wrong-answer pool for an exercise by blending
// two sources: words from the transcript itself (context distractors, which
// feel plausible because the learner just heard similar vocabulary) and the
// static lexicon (generic distractors).
package exercise

import "math/rand"

// contextPoolExcludeCap bounds how many transcript words join the lexicon
// exclusion set, limiting how much transcript vocabulary leaks out of the
// "generic distractor" channel.
const contextPoolExcludeCap = 50

// buildDistractors returns up to needed distinct non-keyword words.
// It returns fewer only when both the transcript and the lexicon are
// exhausted; callers must tolerate a short pool.
func (e *Engine) buildDistractors(keywords []string, transcript string, needed int) []string {
	if needed <= 0 {
		return []string{}
	}

	keywordSet := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		keywordSet[k] = true
	}

	// Context pool: transcript tokens of reasonable length, no keywords,
	// deduplicated in first-seen order.
	var contextPool []string
	seen := make(map[string]bool)
	for _, tok := range Tokenize(transcript) {
		if len(tok) <= 2 || len(tok) >= 12 {
			continue
		}
		if keywordSet[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		contextPool = append(contextPool, tok)
	}

	// Context distractors: a bounded share of the total, drawn at random.
	contextCount := int(float64(needed) * e.opts.ContextShare)
	if contextCount > len(contextPool) {
		contextCount = len(contextPool)
	}
	contextDistractors := sampleFrom(contextPool, contextCount)

	// The lexicon must not hand back keywords, nor the transcript words most
	// likely to appear as context distractors.
	exclude := make([]string, 0, len(keywords)+contextPoolExcludeCap)
	exclude = append(exclude, keywords...)
	for i, w := range contextPool {
		if i >= contextPoolExcludeCap {
			break
		}
		exclude = append(exclude, w)
	}

	libraryCount := needed - contextCount
	if libraryCount > e.opts.MaxLexiconDraw {
		libraryCount = e.opts.MaxLexiconDraw
	}
	library := e.lexicon.Sample(libraryCount, exclude)

	// Merge, dropping any collision between the two channels.
	result := make([]string, 0, needed)
	taken := make(map[string]bool, needed)
	for _, w := range append(library, contextDistractors...) {
		if keywordSet[w] || taken[w] {
			continue
		}
		taken[w] = true
		result = append(result, w)
	}

	// Top up from the lexicon until satisfied or the pool runs dry.
	for len(result) < needed {
		drawn := make([]string, 0, len(exclude)+len(result))
		drawn = append(drawn, exclude...)
		drawn = append(drawn, result...)

		extra := e.lexicon.Sample(needed-len(result), drawn)
		if len(extra) == 0 {
			break
		}
		for _, w := range extra {
			if keywordSet[w] || taken[w] {
				continue
			}
			taken[w] = true
			result = append(result, w)
		}
	}

	if len(result) > needed {
		result = result[:needed]
	}
	return result
}

// sampleFrom draws count distinct entries uniformly at random from pool
// without mutating it.
func sampleFrom(pool []string, count int) []string {
	if count <= 0 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	for i := 0; i < count; i++ {
		j := i + rand.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:count]
}
