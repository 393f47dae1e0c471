package plan

import (
	"fmt"

	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

// FallbackDurationDays is the fixed estimate reported by the fallback plan.
const FallbackDurationDays = 14

// Fallback returns the canned four-step plan used when generation fails.
// cause is embedded in the reasoning.
func Fallback(goal string, cause error) *Breakdown {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}

	return &Breakdown{
		Reasoning:             fmt.Sprintf("Generated a generic fallback plan because the breakdown could not be completed. Error: %s", msg),
		EstimatedDurationDays: FallbackDurationDays,
		Fallback:              true,
		Tasks: []TaskDraft{
			{
				Title:                  fmt.Sprintf("Plan and Research %s", goal),
				Description:            fmt.Sprintf("Research and plan the approach for %s", goal),
				Priority:               domain.PriorityHigh,
				EstimatedDurationHours: 8,
				Dependencies:           []int{},
				DueDateOffsetDays:      0,
			},
			{
				Title:                  fmt.Sprintf("Implement Core Features for %s", goal),
				Description:            fmt.Sprintf("Implement the main functionality for %s", goal),
				Priority:               domain.PriorityHigh,
				EstimatedDurationHours: 16,
				Dependencies:           []int{0},
				DueDateOffsetDays:      2,
			},
			{
				Title:                  fmt.Sprintf("Test and Validate %s", goal),
				Description:            fmt.Sprintf("Test the implementation of %s", goal),
				Priority:               domain.PriorityMedium,
				EstimatedDurationHours: 8,
				Dependencies:           []int{1},
				DueDateOffsetDays:      4,
			},
			{
				Title:                  fmt.Sprintf("Deploy and Launch %s", goal),
				Description:            fmt.Sprintf("Deploy and launch %s", goal),
				Priority:               domain.PriorityHigh,
				EstimatedDurationHours: 4,
				Dependencies:           []int{2},
				DueDateOffsetDays:      6,
			},
		},
	}
}
