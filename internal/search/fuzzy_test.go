package search

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"oil", "", 3},
		{"", "oil", 3},
		{"oil", "oil", 0},
		{"oil", "oli", 2},
		{"chain", "chian", 2},
		{"filter", "fitler", 2},
		{"brake", "break", 2},
		{"plug", "plugs", 1},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Fatalf("levenshtein(%q, %q) expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestIsFuzzyMatchSubstring(t *testing.T) {
	if !IsFuzzyMatch("oil", "Engine Oil Change (Havoline)") {
		t.Fatalf("expected case-insensitive substring match")
	}
	if !IsFuzzyMatch("oil change", "Full engine oil change") {
		t.Fatalf("expected multi-word substring match")
	}
}

func TestIsFuzzyMatchTolerance(t *testing.T) {
	cases := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"one typo in medium word", "chan", "drive chain adjusted", true},
		{"two typos in long word", "fitler", "oil filter replaced", true},
		{"short words need exact match", "ol", "oil change", false},
		{"too many typos", "fliper", "oil filter replaced", false},
		{"every query word must match", "oil sprocket", "oil change only", false},
		{"all words match across text", "oil filtr", "replaced oil filter", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFuzzyMatch(tc.query, tc.text); got != tc.want {
				t.Fatalf("IsFuzzyMatch(%q, %q) expected %v, got %v", tc.query, tc.text, got, tc.want)
			}
		})
	}
}

func TestIsFuzzyMatchEmptyQuery(t *testing.T) {
	if IsFuzzyMatch("", "anything") {
		t.Fatalf("expected empty query to never match")
	}
	if IsFuzzyMatch("   ", "anything") {
		t.Fatalf("expected whitespace query to never match")
	}
}
