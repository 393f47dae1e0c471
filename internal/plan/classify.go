package plan

import (
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

// Classify maps goal and context text to a goal type. Keyword sets are
// tested in catalog order and the first hit wins; text matching none of
// them is a product launch.
func Classify(goal, context string) domain.GoalType {
	text := strings.ToLower(goal + " " + context)
	if gt, ok := catalog.MatchGoalType(text); ok {
		return gt
	}
	return domain.DefaultGoalType
}
