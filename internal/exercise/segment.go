// segment.go spreads keywords and distractors across the audio timeline so
// that correct answers cannot cluster at the start of the exercise.
package exercise

import "math"

// SegmentPlan describes how the option words map onto time segments.
// A plan is either segmented (Count > 0, every word assigned to exactly one
// segment index in [0, Count)) or unsegmented (Count == 0, no assignments) —
// the two modes never mix within one plan.
type SegmentPlan struct {
	Count       int
	keywords    map[string]int
	distractors map[string]int
}

// Segmented reports whether the plan carries time segment assignments.
func (p *SegmentPlan) Segmented() bool {
	return p.Count > 0
}

// KeywordSegment returns the segment index assigned to a keyword.
func (p *SegmentPlan) KeywordSegment(word string) (int, bool) {
	seg, ok := p.keywords[word]
	return seg, ok
}

// DistractorSegment returns the segment index assigned to a distractor.
func (p *SegmentPlan) DistractorSegment(word string) (int, bool) {
	seg, ok := p.distractors[word]
	return seg, ok
}

// planSegments partitions the timeline into segments sized to hold
// KeywordsPerSegment keywords each, clamped to [MinSegmentSeconds,
// MaxSegmentSeconds], and assigns every keyword and distractor a segment.
// Keywords are assigned in selection-rank order so the strongest keywords
// spread evenly from the first segment onward; distractors follow the same
// formula independently.
//
// An unknown duration (<= 0) yields the unsegmented plan.
func (e *Engine) planSegments(keywords, distractors []string, durationSeconds float64) *SegmentPlan {
	if durationSeconds <= 0 || len(keywords) == 0 {
		return &SegmentPlan{}
	}

	idealSegments := int(math.Ceil(float64(len(keywords)) / float64(e.opts.KeywordsPerSegment)))
	if idealSegments < 1 {
		idealSegments = 1
	}

	segmentDuration := int(math.Ceil(durationSeconds / float64(idealSegments)))
	if segmentDuration < e.opts.MinSegmentSeconds {
		segmentDuration = e.opts.MinSegmentSeconds
	}
	if segmentDuration > e.opts.MaxSegmentSeconds {
		segmentDuration = e.opts.MaxSegmentSeconds
	}

	count := int(math.Ceil(durationSeconds / float64(segmentDuration)))
	if count < 1 {
		count = 1
	}

	plan := &SegmentPlan{
		Count:       count,
		keywords:    assignEvenly(keywords, count),
		distractors: assignEvenly(distractors, count),
	}
	return plan
}

// assignEvenly maps words to segments by rank: with perSegment =
// ceil(len/count), word i lands in segment min(i/perSegment, count-1).
func assignEvenly(words []string, count int) map[string]int {
	assigned := make(map[string]int, len(words))
	if len(words) == 0 {
		return assigned
	}

	perSegment := (len(words) + count - 1) / count
	if perSegment < 1 {
		perSegment = 1
	}
	for i, w := range words {
		seg := i / perSegment
		if seg > count-1 {
			seg = count - 1
		}
		assigned[w] = seg
	}
	return assigned
}
