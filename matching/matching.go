// Package matching scores spreadsheet or vendor names against a master
// vendor list, so imported sheets can be tagged with the vendor they
// belong to.
package matching

import (
	"github.com/agext/levenshtein"
)

// DefaultThreshold is the minimum similarity score (0-100) a candidate
// needs to count as a match.
const DefaultThreshold = 80

// MatchVendor returns the entry of master most similar to name, or the
// empty string when no entry scores at or above threshold. Scoring uses
// best-window (partial) similarity, so a short name like "Acme Corp" fully
// matches inside "Acme Corporation". Ties keep the earliest entry.
func MatchVendor(name string, master []string, threshold int) string {
	if name == "" || len(master) == 0 {
		return ""
	}

	cutoff := float64(threshold) / 100.0
	if cutoff < 0 {
		cutoff = 0
	}
	if cutoff > 1 {
		cutoff = 1
	}

	best := ""
	bestScore := -1.0
	for _, candidate := range master {
		if score := partialSimilarity(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore >= cutoff {
		return best
	}
	return ""
}

// ClosestMatch is the whole-string variant: it compares name against each
// entry in full, with a cutoff in difflib's 0..1 range.
func ClosestMatch(name string, master []string, cutoff float64) string {
	if name == "" || len(master) == 0 {
		return ""
	}

	best := ""
	bestScore := -1.0
	for _, candidate := range master {
		if score := levenshtein.Similarity(name, candidate, nil); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore >= cutoff {
		return best
	}
	return ""
}

// partialSimilarity slides a window the size of the shorter string over
// the longer one and returns the best window similarity (0..1).
func partialSimilarity(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	best := 0.0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := string(longer[start : start+len(shorter)])
		if score := levenshtein.Similarity(string(shorter), window, nil); score > best {
			best = score
		}
	}
	return best
}
