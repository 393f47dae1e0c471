package advisor

import (
	"strings"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
)

// MaxSuggestions caps the length of every suggestion list.
const MaxSuggestions = 5

var genericSuggestions = []string{
	"Break down into smaller, more specific subtasks",
	"Add measurable success criteria",
	"Consider potential blockers and mitigation strategies",
	"Set up regular check-ins or milestones",
	"Document lessons learned for future reference",
}

var suggestionRules = []catalog.Rule[[]string]{
	{
		Keywords: []string{"research"},
		Outcome: []string{
			"Create a research plan with specific questions",
			"Identify key sources and experts to consult",
		},
	},
	{
		Keywords: []string{"implement", "develop"},
		Outcome: []string{
			"Write unit tests alongside implementation",
			"Consider code review and pair programming",
		},
	},
	{
		Keywords: []string{"test"},
		Outcome: []string{
			"Create test cases before testing begins",
			"Document bugs and their resolutions",
		},
	},
}

// Suggest returns up to MaxSuggestions improvement ideas for a task.
// Domain-specific ideas are appended after the generic ones before the cap
// is applied, so with five generic entries they never surface.
// context is accepted for symmetry with plan generation and is unused.
func Suggest(taskTitle, context string) []string {
	out := append([]string(nil), genericSuggestions...)
	if extra, ok := catalog.Match(suggestionRules, strings.ToLower(taskTitle)); ok {
		out = append(out, extra...)
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
