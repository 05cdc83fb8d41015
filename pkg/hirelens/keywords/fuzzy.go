package keywords

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio is the default similarity function: Levenshtein distance scaled
// to [0, 1] by the longer string's rune length.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// bestFuzzy slides a window of the keyword's word count over the text
// words and returns the best similarity with the matched window. A
// length difference alone caps the attainable ratio at
// 1 - |diff|/max(len), so windows that cannot reach the configured
// threshold are skipped without computing a distance.
func (m *Matcher) bestFuzzy(keyword string, words []string) (float64, string) {
	width := len(strings.Fields(keyword))
	if width == 0 || len(words) < width {
		return 0, ""
	}

	var (
		best     float64
		bestText string
	)
	for i := 0; i+width <= len(words); i++ {
		window := strings.Join(words[i:i+width], " ")
		diff := len(window) - len(keyword)
		if diff < 0 {
			diff = -diff
		}
		longest := len(window)
		if len(keyword) > longest {
			longest = len(keyword)
		}
		if float64(diff) > (1-m.threshold)*float64(longest) {
			continue
		}
		if r := m.similarity(keyword, window); r > best {
			best = r
			bestText = window
		}
	}
	return best, bestText
}
