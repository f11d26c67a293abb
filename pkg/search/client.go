package search

import "context"

// DefaultSize is the number of results requested when the caller does not
// provide a positive size.
const DefaultSize = 10

// SummaryMaxLength is the maximum number of characters kept in a result summary.
const SummaryMaxLength = 200

type Client interface {
	Search(ctx context.Context, terms string, size int) ([]Result, error)
}

type Result struct {
	Title   string `json:"title" yaml:"title"`
	Link    string `json:"link" yaml:"link"`
	Summary string `json:"summary" yaml:"summary"`
}

// Truncate returns the first n characters of s. The cut ignores word
// boundaries but never splits a multi-byte character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
