package catalog

import (
	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

// Archetype is a catalog task template before customization.
type Archetype struct {
	Title            string          `json:"title" yaml:"title"`
	BaselineHours    int             `json:"baseline_hours" yaml:"baseline_hours"`
	BaselinePriority domain.Priority `json:"baseline_priority" yaml:"baseline_priority"`
}

func a(title string, hours int, p domain.Priority) Archetype {
	return Archetype{Title: title, BaselineHours: hours, BaselinePriority: p}
}

const (
	low    = domain.PriorityLow
	medium = domain.PriorityMedium
	high   = domain.PriorityHigh
)

// Catalog order is the canonical task order of a generated plan.
var archetypes = map[domain.GoalType][]Archetype{
	domain.GoalProductLaunch: {
		a("Market Research and Analysis", 16, high),
		a("Define Product Requirements", 12, high),
		a("Create Project Timeline", 4, high),
		a("Set up Development Environment", 8, high),
		a("Design User Interface", 20, medium),
		a("Implement Core Features", 40, high),
		a("Write Unit Tests", 16, medium),
		a("Integration Testing", 12, medium),
		a("User Acceptance Testing", 8, medium),
		a("Deploy to Production", 8, high),
		a("Create Documentation", 12, low),
		a("Marketing and Promotion", 16, medium),
	},
	domain.GoalLearning: {
		a("Research Learning Resources", 4, high),
		a("Set Learning Goals", 2, high),
		a("Create Study Schedule", 2, high),
		a("Complete Basic Tutorials", 16, high),
		a("Practice with Small Projects", 24, medium),
		a("Join Learning Community", 4, low),
		a("Build Portfolio Project", 32, medium),
		a("Seek Feedback and Mentorship", 8, medium),
		a("Advanced Practice", 20, medium),
		a("Document Learning Journey", 4, low),
	},
	domain.GoalEventPlanning: {
		a("Define Event Objectives", 4, high),
		a("Set Budget and Timeline", 4, high),
		a("Choose Venue and Date", 8, high),
		a("Create Guest List", 4, medium),
		a("Send Invitations", 4, medium),
		a("Plan Activities and Agenda", 12, medium),
		a("Arrange Catering", 6, medium),
		a("Set up Equipment and Decorations", 8, low),
		a("Coordinate with Vendors", 6, medium),
		a("Final Preparations", 4, high),
		a("Execute Event", 8, high),
		a("Follow-up and Feedback", 4, low),
	},
	domain.GoalBusinessStartup: {
		a("Market Research and Validation", 20, high),
		a("Create Business Plan", 16, high),
		a("Register Business Entity", 4, high),
		a("Set up Financial Systems", 8, high),
		a("Develop MVP (Minimum Viable Product)", 60, high),
		a("Build Brand Identity", 12, medium),
		a("Create Marketing Strategy", 16, medium),
		a("Launch Website", 20, medium),
		a("Find First Customers", 24, high),
		a("Gather Customer Feedback", 8, medium),
		a("Iterate and Improve", 20, medium),
		a("Scale Operations", 32, low),
	},
	domain.GoalMobileApp: {
		a("Define App Requirements", 8, high),
		a("Create Wireframes and Mockups", 16, high),
		a("Set up Development Environment", 6, high),
		a("Implement User Authentication", 12, high),
		a("Develop Core Features", 40, high),
		a("Integrate APIs and Backend", 20, medium),
		a("Implement UI/UX Design", 24, medium),
		a("Testing and Bug Fixes", 16, medium),
		a("Performance Optimization", 12, medium),
		a("Prepare for App Store", 8, high),
		a("Submit for Review", 2, high),
		a("Launch and Marketing", 16, medium),
	},
}

// ArchetypesFor returns a copy of the archetype sequence for goalType.
// Unknown types fall back to the product launch catalog.
func ArchetypesFor(goalType domain.GoalType) []Archetype {
	src, ok := archetypes[goalType]
	if !ok {
		src = archetypes[domain.DefaultGoalType]
	}
	return append([]Archetype(nil), src...)
}

// GoalTypes lists the catalog keys in classification order.
func GoalTypes() []domain.GoalType {
	out := make([]domain.GoalType, 0, len(goalTypeRules))
	for _, r := range goalTypeRules {
		out = append(out, r.Outcome)
	}
	return out
}
