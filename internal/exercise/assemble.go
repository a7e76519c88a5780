// assemble.go merges keywords and distractors into the final option list.
//
// Within each time segment the combined group is permuted uniformly at
// random (Fisher–Yates via rand.Shuffle) so a learner cannot infer
// correctness from position. In the unsegmented mode the whole pool is one
// group.
package exercise

import "math/rand"

// assemble emits the ordered ExerciseOption list for a plan. IDs are
// sequential in final output order; TimeSegment is set only for segmented
// plans.
func assemble(keywords, distractors []string, plan *SegmentPlan) []ExerciseOption {
	keywordSet := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		keywordSet[k] = true
	}

	var ordered []string

	if plan.Segmented() {
		groups := make([][]string, plan.Count)
		for _, k := range keywords {
			seg, _ := plan.KeywordSegment(k)
			groups[seg] = append(groups[seg], k)
		}
		for _, d := range distractors {
			seg, _ := plan.DistractorSegment(d)
			groups[seg] = append(groups[seg], d)
		}
		for _, group := range groups {
			rand.Shuffle(len(group), func(i, j int) {
				group[i], group[j] = group[j], group[i]
			})
			ordered = append(ordered, group...)
		}
	} else {
		ordered = make([]string, 0, len(keywords)+len(distractors))
		ordered = append(ordered, keywords...)
		ordered = append(ordered, distractors...)
		rand.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	options := make([]ExerciseOption, 0, len(ordered))
	for i, word := range ordered {
		opt := ExerciseOption{
			ID:        i,
			Text:      word,
			IsKeyword: keywordSet[word],
		}
		if plan.Segmented() {
			var seg int
			if opt.IsKeyword {
				seg, _ = plan.KeywordSegment(word)
			} else {
				seg, _ = plan.DistractorSegment(word)
			}
			segCopy := seg
			opt.TimeSegment = &segCopy
		}
		options = append(options, opt)
	}
	return options
}
