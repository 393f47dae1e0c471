package catalog

import (
	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

// goalTypeRules is evaluated top to bottom; mobile_app must stay first so
// that "launch a mobile app" is not claimed by product_launch.
var goalTypeRules = []Rule[domain.GoalType]{
	{Keywords: []string{"app", "mobile", "ios", "android", "react native"}, Outcome: domain.GoalMobileApp},
	{Keywords: []string{"learn", "study", "course", "tutorial", "skill"}, Outcome: domain.GoalLearning},
	{Keywords: []string{"event", "party", "conference", "meeting", "gathering"}, Outcome: domain.GoalEventPlanning},
	{Keywords: []string{"business", "startup", "company", "entrepreneur"}, Outcome: domain.GoalBusinessStartup},
	{Keywords: []string{"launch", "product", "release", "deploy"}, Outcome: domain.GoalProductLaunch},
}

var priorityRules = []Rule[domain.Priority]{
	{
		Keywords: []string{"urgent", "critical", "essential", "immediate", "launch", "deadline", "core", "main", "primary"},
		Outcome:  domain.PriorityHigh,
	},
	{
		Keywords: []string{"important", "secondary", "support", "enhancement", "feature", "improvement"},
		Outcome:  domain.PriorityMedium,
	},
	{
		Keywords: []string{"optional", "nice-to-have", "future", "documentation", "cleanup", "optimization"},
		Outcome:  domain.PriorityLow,
	},
}

// titleSubstitutionRules select the word that replaces "Product" in
// archetype titles.
var titleSubstitutionRules = []Rule[string]{
	{Keywords: []string{"app", "mobile"}, Outcome: "App"},
	{Keywords: []string{"website", "web"}, Outcome: "Website"},
	{Keywords: []string{"business"}, Outcome: "Business"},
}

// descriptionRules map a phase keyword to a description template. Each
// template takes the lower-cased goal as its single argument.
var descriptionRules = []Rule[string]{
	{Keywords: []string{"market research"}, Outcome: "Research the target market for %s to understand user needs and competition."},
	{Keywords: []string{"define requirements"}, Outcome: "Define clear requirements and specifications for %s."},
	{Keywords: []string{"set up environment"}, Outcome: "Set up the development environment and necessary tools for %s."},
	{Keywords: []string{"design"}, Outcome: "Create designs and mockups for %s focusing on user experience."},
	{Keywords: []string{"implement"}, Outcome: "Implement the core functionality for %s."},
	{Keywords: []string{"testing"}, Outcome: "Test %s thoroughly to ensure quality and functionality."},
	{Keywords: []string{"deploy"}, Outcome: "Deploy %s to production environment."},
	{Keywords: []string{"documentation"}, Outcome: "Create comprehensive documentation for %s."},
	{Keywords: []string{"marketing"}, Outcome: "Develop marketing strategy and materials for %s."},
}

// GenericDescription is used when no description rule matches. It takes the
// lower-cased title and the lower-cased goal.
const GenericDescription = "Complete the %s phase for %s."

// ProductPlaceholder is the word replaced in archetype titles.
const ProductPlaceholder = "Product"

// MatchGoalType returns the goal type of the first matching classification rule.
func MatchGoalType(text string) (domain.GoalType, bool) {
	return Match(goalTypeRules, text)
}

// MatchPriority returns the priority tier of the first matching rule.
func MatchPriority(text string) (domain.Priority, bool) {
	return Match(priorityRules, text)
}

// MatchTitleSubstitution returns the replacement for ProductPlaceholder.
func MatchTitleSubstitution(goal string) (string, bool) {
	return Match(titleSubstitutionRules, goal)
}

// MatchDescription returns the description template for a lower-cased title.
func MatchDescription(title string) (string, bool) {
	return Match(descriptionRules, title)
}

// KeywordsFor returns a copy of the keywords that classify a goal as
// goalType, or nil when no rule produces it.
func KeywordsFor(goalType domain.GoalType) []string {
	for _, r := range goalTypeRules {
		if r.Outcome == goalType {
			return append([]string(nil), r.Keywords...)
		}
	}
	return nil
}
