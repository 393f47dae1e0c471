package plan

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

var closingSentences = []string{
	"Tasks are ordered logically with dependencies to ensure smooth progression.",
	"Priority levels are assigned based on importance and dependencies.",
	"Time estimates are realistic and account for potential challenges.",
}

// ComposeReasoning builds the fixed-structure rationale attached to a
// breakdown.
func ComposeReasoning(goal string, goalType domain.GoalType, taskCount, timelineWeeks int) string {
	parts := []string{
		fmt.Sprintf("Analyzed the goal '%s' and identified it as a %s project.", goal, goalType.Label()),
		fmt.Sprintf("Generated %d actionable tasks based on best practices for this type of project.", taskCount),
	}
	if timelineWeeks > 0 {
		parts = append(parts, fmt.Sprintf("Adjusted task durations to fit within the %d-week timeline.", timelineWeeks))
	}
	parts = append(parts, closingSentences...)
	return strings.Join(parts, " ")
}

// EstimateDays converts the summed task hours into working days of eight
// hours, never reporting less than one day.
func EstimateDays(tasks []TaskDraft) int {
	total := 0
	for _, t := range tasks {
		total += t.EstimatedDurationHours
	}
	return max(1, total/8)
}
