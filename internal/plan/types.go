package plan

import (
	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

// Request is the input of one generation call.
type Request struct {
	// Goal is the free-text objective. Blank goals are not rejected here;
	// callers validate before generating.
	Goal string `json:"goal" yaml:"goal"`

	// TimelineWeeks caps task durations when positive. Zero means no
	// timeline; negative values are malformed and trigger the fallback plan.
	TimelineWeeks int `json:"timeline_weeks,omitempty" yaml:"timeline_weeks,omitempty"`

	// Context is optional extra text that takes part in classification and
	// priority detection.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// Breakdown is the complete output of one generation call. Its task
// positions are the only identities it carries; durable identifiers and
// calendar dates are assigned by whoever persists it.
type Breakdown struct {
	Reasoning             string          `json:"reasoning" yaml:"reasoning"`
	EstimatedDurationDays int             `json:"estimated_duration_days" yaml:"estimated_duration_days"`
	Tasks                 []TaskDraft     `json:"tasks" yaml:"tasks"`
	GoalType              domain.GoalType `json:"goal_type,omitempty" yaml:"goal_type,omitempty"`
	Fallback              bool            `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Fingerprint           string          `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"` // blake3 of the canonical form
	RequestID             string          `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// TaskDraft is a customized task that has not been persisted yet.
// Dependencies holds indices of earlier tasks, sorted ascending.
type TaskDraft struct {
	Title                  string          `json:"title" yaml:"title"`
	Description            string          `json:"description" yaml:"description"`
	Priority               domain.Priority `json:"priority" yaml:"priority"`
	EstimatedDurationHours int             `json:"estimated_duration_hours" yaml:"estimated_duration_hours"`
	Dependencies           []int           `json:"dependencies" yaml:"dependencies"`
	DueDateOffsetDays      int             `json:"due_date_offset_days" yaml:"due_date_offset_days"`
}

// TotalHours sums the estimated hours of every task.
func (b *Breakdown) TotalHours() int {
	total := 0
	for _, t := range b.Tasks {
		total += t.EstimatedDurationHours
	}
	return total
}
