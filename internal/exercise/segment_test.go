// segment_test.go — Unit tests for temporal segmentation arithmetic.
package exercise

import "testing"

func TestPlanSegmentsUnsegmented(t *testing.T) {
	e := New(NewLexicon())

	tests := []struct {
		name     string
		duration float64
	}{
		{"zero duration", 0},
		{"negative duration", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := e.planSegments([]string{"ocean", "mountain"}, []string{"river"}, tt.duration)
			if plan.Segmented() {
				t.Errorf("plan.Segmented() = true for duration %v, want false", tt.duration)
			}
			if plan.Count != 0 {
				t.Errorf("plan.Count = %d, want 0", plan.Count)
			}
		})
	}
}

// TestPlanSegmentsTwoKeywords reproduces the arithmetic for a two-keyword,
// two-minute recording: one ideal segment of 120s is clamped to 60s, which
// splits the timeline into two segments holding one keyword each.
func TestPlanSegmentsTwoKeywords(t *testing.T) {
	e := New(NewLexicon())
	plan := e.planSegments([]string{"ocean", "mountain"}, nil, 120)

	if plan.Count != 2 {
		t.Fatalf("plan.Count = %d, want 2", plan.Count)
	}
	if seg, ok := plan.KeywordSegment("ocean"); !ok || seg != 0 {
		t.Errorf("KeywordSegment(ocean) = %d, %v; want 0, true", seg, ok)
	}
	if seg, ok := plan.KeywordSegment("mountain"); !ok || seg != 1 {
		t.Errorf("KeywordSegment(mountain) = %d, %v; want 1, true", seg, ok)
	}
}

func TestPlanSegmentsBounds(t *testing.T) {
	e := New(NewLexicon())

	keywords := make([]string, 20)
	distractors := make([]string, 60)
	for i := range keywords {
		keywords[i] = "kw" + string(rune('a'+i))
	}
	for i := range distractors {
		distractors[i] = "dst" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}

	plan := e.planSegments(keywords, distractors, 300)
	if !plan.Segmented() {
		t.Fatal("expected a segmented plan for a 5-minute recording")
	}

	// 20 keywords → 5 ideal segments → 60s each, within the clamp,
	// so segmentCount = ceil(300/60) = 5.
	if plan.Count != 5 {
		t.Errorf("plan.Count = %d, want 5", plan.Count)
	}

	// Every word is assigned exactly one in-range segment.
	for _, k := range keywords {
		seg, ok := plan.KeywordSegment(k)
		if !ok {
			t.Errorf("keyword %q has no segment", k)
		}
		if seg < 0 || seg >= plan.Count {
			t.Errorf("keyword %q assigned to segment %d, out of [0,%d)", k, seg, plan.Count)
		}
	}
	for _, d := range distractors {
		seg, ok := plan.DistractorSegment(d)
		if !ok {
			t.Errorf("distractor %q has no segment", d)
		}
		if seg < 0 || seg >= plan.Count {
			t.Errorf("distractor %q assigned to segment %d, out of [0,%d)", d, seg, plan.Count)
		}
	}

	// Assignments fill segments in order: the first keyword lands in segment 0.
	if seg, _ := plan.KeywordSegment(keywords[0]); seg != 0 {
		t.Errorf("first keyword in segment %d, want 0", seg)
	}
}

func TestPlanSegmentsShortAudioClampsUp(t *testing.T) {
	e := New(NewLexicon())
	// 8 keywords in 40s: 2 ideal segments of 20s each, clamped up to 30s,
	// so segmentCount = ceil(40/30) = 2.
	plan := e.planSegments([]string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8"}, nil, 40)
	if plan.Count != 2 {
		t.Errorf("plan.Count = %d, want 2", plan.Count)
	}
}
