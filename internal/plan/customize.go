package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

const (
	hoursPerWeek    = 40
	minClampedHours = 4
	dueDateSpacing  = 2
)

// Customize turns archetypes into task drafts for goal. Dependencies are
// left empty; see InferDependencies.
func Customize(archetypes []catalog.Archetype, goal, context string, timelineWeeks int) ([]TaskDraft, error) {
	if timelineWeeks < 0 {
		return nil, errors.NewTimelineInvalidError(timelineWeeks)
	}

	drafts := make([]TaskDraft, 0, len(archetypes))
	for i, arch := range archetypes {
		if arch.BaselineHours <= 0 {
			return nil, errors.NewPlanInvalidError(
				fmt.Sprintf("archetype %q has non-positive duration %d", arch.Title, arch.BaselineHours))
		}

		title := customizeTitle(arch.Title, goal)
		drafts = append(drafts, TaskDraft{
			Title:                  title,
			Description:            describe(title, goal),
			Priority:               determinePriority(arch.Title, goal, context),
			EstimatedDurationHours: scaleDuration(arch.BaselineHours, len(archetypes), timelineWeeks),
			Dependencies:           []int{},
			DueDateOffsetDays:      i * dueDateSpacing,
		})
	}

	return drafts, nil
}

// customizeTitle replaces "Product" with a goal-specific word. Only the
// first matching substitution rule applies.
func customizeTitle(title, goal string) string {
	word, ok := catalog.MatchTitleSubstitution(strings.ToLower(goal))
	if !ok {
		return title
	}
	return strings.ReplaceAll(title, catalog.ProductPlaceholder, word)
}

func describe(title, goal string) string {
	lowerGoal := strings.ToLower(goal)
	lowerTitle := strings.ToLower(title)
	if tmpl, ok := catalog.MatchDescription(lowerTitle); ok {
		return fmt.Sprintf(tmpl, lowerGoal)
	}
	return fmt.Sprintf(catalog.GenericDescription, lowerTitle, lowerGoal)
}

// determinePriority ignores the archetype's baseline priority: keyword
// tiers always decide, and medium is the default.
func determinePriority(title, goal, context string) domain.Priority {
	text := strings.ToLower(title + " " + goal + " " + context)
	if p, ok := catalog.MatchPriority(text); ok {
		return p
	}
	return domain.PriorityMedium
}

// scaleDuration clamps hours to the per-task share of the timeline budget.
// Each task is compared against the same share; the budget is not consumed
// as tasks are scaled.
func scaleDuration(hours, taskCount, timelineWeeks int) int {
	if timelineWeeks == 0 || taskCount == 0 {
		return hours
	}
	// A budget too large for int cannot clamp anything.
	if timelineWeeks > math.MaxInt/hoursPerWeek {
		return hours
	}
	maxHours := timelineWeeks * hoursPerWeek
	if hours*taskCount <= maxHours {
		return hours
	}
	return max(minClampedHours, maxHours/taskCount)
}
