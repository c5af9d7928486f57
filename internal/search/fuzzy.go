// Package search implements word-level fuzzy matching for entry
// descriptions.
package search

import "strings"

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = minInt(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// IsFuzzyMatch reports whether every word of the query has a close
// match in the text. Exact substring matches short-circuit; otherwise
// word pairs within a typo threshold (scaled by word length) count.
func IsFuzzyMatch(query, text string) bool {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	lowerText := strings.ToLower(text)

	if lowerQuery == "" {
		return false
	}
	if strings.Contains(lowerText, lowerQuery) {
		return true
	}

	queryWords := strings.Fields(lowerQuery)
	textWords := strings.Fields(lowerText)

	for _, qw := range queryWords {
		threshold := 0
		switch {
		case len(qw) >= 3 && len(qw) <= 5:
			threshold = 1
		case len(qw) > 5:
			threshold = 2
		}

		matched := false
		for _, tw := range textWords {
			if levenshtein(qw, tw) <= threshold {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return len(queryWords) > 0
}
