package domain

import "fmt"

// Priority is the urgency tier of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	// PriorityUrgent is accepted everywhere but no keyword rule produces it.
	PriorityUrgent Priority = "urgent"
)

var priorityRanks = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// Validate rejects anything but the four tiers. Matching is case-sensitive.
func (p Priority) Validate() error {
	if _, ok := priorityRanks[p]; !ok {
		return fmt.Errorf("invalid priority %q: must be low, medium, high, or urgent", string(p))
	}
	return nil
}

func (p Priority) String() string {
	return string(p)
}

// IsHigherThan orders tiers low < medium < high < urgent. Unknown values
// rank below low.
func (p Priority) IsHigherThan(other Priority) bool {
	return priorityRanks[p] > priorityRanks[other]
}
