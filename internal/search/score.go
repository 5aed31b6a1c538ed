package search

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// Threshold is the worst score a fuzzy match may have and still be returned
	Threshold = 0.2

	// Distance is how many characters into a name a match may start before the
	// location penalty alone reaches 1.0
	Distance = 100
)

// Score returns the dissimilarity between pattern and name on a 0 (exact) to
// 1 (unrelated) scale. Comparison is case-insensitive. The score is the fewest
// edits needed to turn pattern into any window of name, divided by the
// pattern length, plus a penalty for how far into name that window starts.
func Score(name, pattern string) float64 {
	p := []rune(strings.ToLower(pattern))
	if len(p) == 0 {
		return 0
	}

	score, ok := bestWindow([]rune(strings.ToLower(name)), p, len(p), 1)
	if !ok {
		return 1
	}
	return score
}

// bestWindow finds the lowest score over every window of text within
// maxEdits edits of pattern, ignoring windows that cannot score at or below
// limit.
func bestWindow(text, pattern []rune, maxEdits int, limit float64) (float64, bool) {
	m := len(pattern)
	p := string(pattern)

	best := 0.0
	found := false
	for start := 0; start < len(text); start++ {
		penalty := float64(start) / Distance
		if penalty > limit || (found && penalty >= best) {
			break
		}

		lo := max(1, m-maxEdits)
		hi := min(m+maxEdits, len(text)-start)
		for l := lo; l <= hi; l++ {
			edits := levenshtein.ComputeDistance(p, string(text[start:start+l]))
			if edits > maxEdits {
				continue
			}
			score := float64(edits)/float64(m) + penalty
			if score > limit {
				continue
			}
			if !found || score < best {
				best = score
				found = true
			}
		}
	}

	if !found {
		return 0, false
	}
	return min(best, 1), true
}
