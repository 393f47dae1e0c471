package advisor

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
)

// Complexity is a coarse difficulty tier.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// ComplexityAnalysis describes how demanding a task is likely to be.
type ComplexityAnalysis struct {
	Complexity          Complexity `json:"complexity" yaml:"complexity"`
	EstimatedHours      int        `json:"estimated_hours" yaml:"estimated_hours"`
	RequiredSkills      []string   `json:"required_skills" yaml:"required_skills"`
	PotentialChallenges []string   `json:"potential_challenges" yaml:"potential_challenges"`
	SuggestedApproach   string     `json:"suggested_approach" yaml:"suggested_approach"`
}

type profile struct {
	complexity Complexity
	hours      int
	skills     []string
}

var complexityRules = []catalog.Rule[profile]{
	{
		Keywords: []string{"research", "plan", "setup", "configure"},
		Outcome:  profile{ComplexityLow, 4, []string{"Research", "Planning", "Basic technical skills"}},
	},
	{
		Keywords: []string{"implement", "develop", "build", "create"},
		Outcome:  profile{ComplexityHigh, 16, []string{"Programming", "System design", "Problem solving"}},
	},
	{
		Keywords: []string{"test", "validate", "review"},
		Outcome:  profile{ComplexityMedium, 8, []string{"Testing", "Quality assurance", "Attention to detail"}},
	},
}

var defaultProfile = profile{ComplexityMedium, 8, []string{"General project management", "Communication"}}

var potentialChallenges = []string{
	"Time estimation accuracy",
	"Resource availability",
	"Technical complexity",
	"External dependencies",
}

// Analyze classifies a task title into a complexity tier. The first matching
// keyword group wins; the challenge list is the same for every tier.
func Analyze(taskTitle string) ComplexityAnalysis {
	p, ok := catalog.Match(complexityRules, strings.ToLower(taskTitle))
	if !ok {
		p = defaultProfile
	}

	return ComplexityAnalysis{
		Complexity:          p.complexity,
		EstimatedHours:      p.hours,
		RequiredSkills:      append([]string(nil), p.skills...),
		PotentialChallenges: append([]string(nil), potentialChallenges...),
		SuggestedApproach: fmt.Sprintf(
			"Break down the %s complexity task into smaller steps and allocate appropriate time for each phase.", p.complexity),
	}
}
