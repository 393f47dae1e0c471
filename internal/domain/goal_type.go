package domain

import (
	"fmt"
	"strings"
)

// GoalType tags a goal with the catalog used to break it down.
type GoalType string

const (
	GoalMobileApp       GoalType = "mobile_app"
	GoalLearning        GoalType = "learning"
	GoalEventPlanning   GoalType = "event_planning"
	GoalBusinessStartup GoalType = "business_startup"
	GoalProductLaunch   GoalType = "product_launch"
)

// DefaultGoalType is used when no keyword set matches.
const DefaultGoalType = GoalProductLaunch

// NewGoalType creates a GoalType with validation
func NewGoalType(value string) (GoalType, error) {
	g := GoalType(value)
	if err := g.Validate(); err != nil {
		return "", err
	}
	return g, nil
}

// Validate checks if the goal type is one of the known catalogs
func (g GoalType) Validate() error {
	switch g {
	case GoalMobileApp, GoalLearning, GoalEventPlanning, GoalBusinessStartup, GoalProductLaunch:
		return nil
	default:
		return fmt.Errorf("invalid goal type %q", string(g))
	}
}

// String returns the string representation
func (g GoalType) String() string {
	return string(g)
}

// Label returns the tag with underscores replaced by spaces, e.g. "mobile app".
func (g GoalType) Label() string {
	return strings.ReplaceAll(string(g), "_", " ")
}
