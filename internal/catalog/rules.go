package catalog

import "strings"

// Rule pairs a keyword set with the outcome selected when any keyword is
// contained in the scanned text.
type Rule[T any] struct {
	Keywords []string
	Outcome  T
}

// Matches reports whether text contains any of the rule's keywords.
func (r Rule[T]) Matches(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Match scans rules in order and returns the outcome of the first rule that
// matches text. Callers are expected to lower-case text beforehand.
func Match[T any](rules []Rule[T], text string) (T, bool) {
	for _, r := range rules {
		if r.Matches(text) {
			return r.Outcome, true
		}
	}
	var zero T
	return zero, false
}
