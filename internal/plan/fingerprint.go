package plan

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
)

// canonicalBreakdown is the hashed view of a breakdown. Request IDs and the
// fingerprint itself are excluded so identical inputs hash identically.
type canonicalBreakdown struct {
	Reasoning string      `json:"reasoning"`
	Days      int         `json:"estimated_duration_days"`
	GoalType  string      `json:"goal_type"`
	Fallback  bool        `json:"fallback"`
	Tasks     []TaskDraft `json:"tasks"`
}

// ComputeFingerprint returns the hex blake3 hash of the breakdown's
// canonical JSON form.
func (b *Breakdown) ComputeFingerprint() string {
	c := canonicalBreakdown{
		Reasoning: b.Reasoning,
		Days:      b.EstimatedDurationDays,
		GoalType:  b.GoalType.String(),
		Fallback:  b.Fallback,
		Tasks:     make([]TaskDraft, len(b.Tasks)),
	}
	for i, t := range b.Tasks {
		t.Dependencies = normalizeDeps(t.Dependencies)
		c.Tasks[i] = t
	}

	// Marshal of plain structs, strings and ints cannot fail.
	data, err := json.Marshal(c)
	if err != nil {
		panic(fmt.Sprintf("canonicalize breakdown: %v", err))
	}

	sum := blake3.Sum256(data)
	return fmt.Sprintf("%x", sum[:])
}

func normalizeDeps(deps []int) []int {
	set := IndexSet{}
	for _, d := range deps {
		set.Add(d)
	}
	return set.Sorted()
}
