package facet

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Closest ranks values by fuzzy similarity to query and returns at most n of
// them. Values the query cannot match as a subsequence are left out, so the
// result is empty when nothing is close.
func Closest(query string, values []string, n int) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(values) == 0 || n <= 0 {
		return nil
	}
	targets := make([]string, len(values))
	for i, v := range values {
		targets[i] = strings.ToLower(v)
	}
	matches := fuzzy.Find(query, targets)
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, values[m.Index])
	}
	return out
}
