package scoring

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEntityConfidence(t *testing.T) {
	cases := []struct {
		name             string
		total, populated int
		want             float64
	}{
		{"empty", 0, 0, 0},
		{"negative total", -3, 2, 0},
		{"one item one category", 1, 1, 0.1 + 1.0/6*0.2},
		{"count capped at ten", 50, 1, 1},
		{"full diversity", 10, 6, 1},
		{"five items three categories", 5, 3, 0.5 + 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EntityConfidence(tc.total, tc.populated)
			if !almost(got, tc.want) {
				t.Errorf("EntityConfidence(%d, %d) = %v, want %v", tc.total, tc.populated, got, tc.want)
			}
		})
	}
}

func TestEntityConfidenceBounds(t *testing.T) {
	for total := 0; total <= 40; total += 4 {
		for populated := 0; populated <= 6; populated++ {
			got := EntityConfidence(total, populated)
			if got < 0 || got > 1 {
				t.Fatalf("EntityConfidence(%d, %d) = %v out of range", total, populated, got)
			}
		}
	}
}

func TestMatchConfidenceEmpty(t *testing.T) {
	if got := MatchConfidence(nil); got != 0 {
		t.Errorf("MatchConfidence(nil) = %v, want 0", got)
	}
	if got := MatchConfidence([]MatchSignal{}); got != 0 {
		t.Errorf("MatchConfidence(empty) = %v, want 0", got)
	}
}

func TestMatchConfidenceWeightedAverage(t *testing.T) {
	signals := []MatchSignal{
		{Score: 1.0, Weight: 1.0, Category: "programming"},
		{Score: 0.9, Weight: 1.0, Category: "programming"},
	}
	// avg (1.0 + 0.9)/2 plus 0.1 bonus for one distinct category
	want := 0.95 + 0.1
	if got := MatchConfidence(signals); !almost(got, want) {
		t.Errorf("MatchConfidence = %v, want %v", got, want)
	}
}

func TestMatchConfidenceWeightsSkewAverage(t *testing.T) {
	signals := []MatchSignal{
		{Score: 1.0, Weight: 3.0, Category: "a"},
		{Score: 0.5, Weight: 1.0, Category: "a"},
	}
	want := (3.0+0.5)/4.0 + 0.1
	if got := MatchConfidence(signals); !almost(got, want) {
		t.Errorf("MatchConfidence = %v, want %v", got, want)
	}
}

func TestMatchConfidenceDiversityBonusCapped(t *testing.T) {
	var signals []MatchSignal
	for _, cat := range []string{"a", "b", "c", "d", "e", "f"} {
		signals = append(signals, MatchSignal{Score: 0.5, Weight: 1.0, Category: cat})
	}
	want := 0.5 + 0.2
	if got := MatchConfidence(signals); !almost(got, want) {
		t.Errorf("MatchConfidence = %v, want bonus capped: %v", got, want)
	}
}

func TestMatchConfidenceZeroWeight(t *testing.T) {
	signals := []MatchSignal{{Score: 1.0, Weight: 0, Category: "a"}}
	if got := MatchConfidence(signals); got != 0 {
		t.Errorf("MatchConfidence with zero total weight = %v, want 0", got)
	}
}

func TestMatchConfidenceClamped(t *testing.T) {
	signals := []MatchSignal{
		{Score: 1.0, Weight: 1.0, Category: "a"},
		{Score: 1.0, Weight: 1.0, Category: "b"},
	}
	if got := MatchConfidence(signals); got != 1 {
		t.Errorf("MatchConfidence = %v, want clamped to 1", got)
	}
}
