package contacts

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower lower-cases s without full case folding, so "ss" does not match "ß"
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Filter returns the contacts whose name contains query, ignoring case.
// Relative order is preserved and an empty query keeps every contact.
func Filter(list []Contact, query string) []Contact {
	if query == "" {
		out := make([]Contact, len(list))
		copy(out, list)
		return out
	}

	needle := lower(query)

	filtered := []Contact{}
	for _, c := range list {
		if strings.Contains(lower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Suggest returns the closest contact name for a query that matched nothing.
// The query is compared against the full name and each word of it; a name is
// only suggested when the edit distance is at most half the longer string.
func Suggest(list []Contact, query string) (string, bool) {
	q := lower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range list {
		name := lower(c.Name)
		candidates := append([]string{name}, strings.Fields(name)...)
		for _, cand := range candidates {
			dist := levenshtein.ComputeDistance(q, cand)
			limit := max(utf8.RuneCountInString(q), utf8.RuneCountInString(cand)) / 2
			if dist > limit {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = c.Name, dist
			}
		}
	}

	return best, bestDist >= 0
}
