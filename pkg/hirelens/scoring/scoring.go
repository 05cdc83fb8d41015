// Package scoring holds the confidence arithmetic used by the extraction
// stages. The formulas are heuristic coverage/diversity signals, not
// calibrated probabilities, so they live behind function types that callers
// can swap out without touching the extractors.
package scoring

// EntityFunc computes a confidence value from the total number of
// extracted items and the number of categories with at least one item.
type EntityFunc func(total, populated int) float64

// MatchFunc computes a confidence value from keyword match signals.
type MatchFunc func(signals []MatchSignal) float64

// MatchSignal carries the score, weight and category of a single keyword
// match, decoupled from the matcher's own result types.
type MatchSignal struct {
	Score    float64
	Weight   float64
	Category string
}

// FallbackEntityConfidence is the fixed confidence reported when entity
// extraction runs on its degraded keyword-substring path.
const FallbackEntityConfidence = 0.5

// entityCategories is the number of string-valued entity categories the
// diversity bonus is normalized against.
const entityCategories = 6

// EntityConfidence is the default EntityFunc: extraction count capped at
// 10 plus a diversity bonus of up to 0.2, clamped to [0, 1].
func EntityConfidence(total, populated int) float64 {
	if total <= 0 {
		return 0
	}
	base := float64(total) / 10.0
	if base > 1 {
		base = 1
	}
	bonus := float64(populated) / entityCategories * 0.2
	return clamp01(base + bonus)
}

// MatchConfidence is the default MatchFunc: the weight-normalized average
// of score*weight, plus a bonus of min(distinct categories/10, 0.2),
// clamped to [0, 1]. No signals means zero confidence.
func MatchConfidence(signals []MatchSignal) float64 {
	if len(signals) == 0 {
		return 0
	}

	var weighted, totalWeight float64
	cats := make(map[string]struct{})
	for _, s := range signals {
		weighted += s.Score * s.Weight
		totalWeight += s.Weight
		if s.Category != "" {
			cats[s.Category] = struct{}{}
		}
	}
	if totalWeight == 0 {
		return 0
	}

	bonus := float64(len(cats)) / 10.0
	if bonus > 0.2 {
		bonus = 0.2
	}

	return clamp01(weighted/totalWeight + bonus)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
