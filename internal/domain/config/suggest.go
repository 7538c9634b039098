package config

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to value, or "" when nothing is
// close enough to be a plausible typo.
func Suggest(value string, candidates []string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(value, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := len(value) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
