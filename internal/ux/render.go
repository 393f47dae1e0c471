package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/taskplanner/internal/advisor"
	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

// Styles holds the lipgloss styles used by text rendering.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Warning  lipgloss.Style
	Label    lipgloss.Style
	Priority map[domain.Priority]lipgloss.Style
}

// NewStyles returns the default palette, or unstyled output when noColor
// is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:   plain,
			Subtle:  plain,
			Warning: plain,
			Label:   plain,
			Priority: map[domain.Priority]lipgloss.Style{
				domain.PriorityLow:    plain,
				domain.PriorityMedium: plain,
				domain.PriorityHigh:   plain,
				domain.PriorityUrgent: plain,
			},
		}
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Label:   lipgloss.NewStyle().Bold(true),
		Priority: map[domain.Priority]lipgloss.Style{
			domain.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			domain.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			domain.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			domain.PriorityUrgent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		},
	}
}

func (s Styles) priority(p domain.Priority) string {
	style, ok := s.Priority[p]
	if !ok {
		return p.String()
	}
	return style.Render(p.String())
}

// RenderBreakdown lays out a breakdown as a numbered task list.
func RenderBreakdown(b *plan.Breakdown, s Styles) string {
	var sb strings.Builder

	header := "Task breakdown"
	if b.GoalType != "" {
		header = fmt.Sprintf("Task breakdown (%s)", b.GoalType.Label())
	}
	sb.WriteString(s.Title.Render(header))
	sb.WriteString("\n")
	if b.Fallback {
		sb.WriteString(s.Warning.Render("Fallback plan: the goal could not be broken down normally."))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for i, t := range b.Tasks {
		fmt.Fprintf(&sb, "%2d. %s  [%s, %dh, day %d]\n",
			i+1, s.Label.Render(t.Title), s.priority(t.Priority), t.EstimatedDurationHours, t.DueDateOffsetDays)
		fmt.Fprintf(&sb, "    %s\n", t.Description)
		if len(t.Dependencies) > 0 {
			deps := make([]string, len(t.Dependencies))
			for j, d := range t.Dependencies {
				deps[j] = fmt.Sprintf("%d", d+1)
			}
			sb.WriteString(s.Subtle.Render("    after: " + strings.Join(deps, ", ")))
			sb.WriteString("\n")
		}
	}

	fmt.Fprintf(&sb, "\n%s %d days (%d hours)\n", s.Label.Render("Estimated duration:"), b.EstimatedDurationDays, b.TotalHours())
	fmt.Fprintf(&sb, "%s %d of %d tasks\n", s.Label.Render("High priority:"), highPriorityCount(b.Tasks), len(b.Tasks))
	fmt.Fprintf(&sb, "\n%s\n", b.Reasoning)
	if b.Fingerprint != "" {
		sb.WriteString(s.Subtle.Render("fingerprint " + shortHash(b.Fingerprint)))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderAnalysis lays out a complexity analysis.
func RenderAnalysis(a advisor.ComplexityAnalysis, s Styles) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%dh)\n", s.Label.Render("Complexity:"), a.Complexity, a.EstimatedHours)
	fmt.Fprintf(&sb, "%s %s\n", s.Label.Render("Skills:"), strings.Join(a.RequiredSkills, ", "))
	fmt.Fprintf(&sb, "%s %s\n", s.Label.Render("Challenges:"), strings.Join(a.PotentialChallenges, ", "))
	fmt.Fprintf(&sb, "%s %s", s.Label.Render("Approach:"), a.SuggestedApproach)
	return sb.String()
}

// Suggestions is a titled list of improvement ideas for one task.
type Suggestions struct {
	Task        string   `json:"task" yaml:"task"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// RenderSuggestions lays out suggestions as a numbered list.
func RenderSuggestions(sg Suggestions, s Styles) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Suggestions for " + sg.Task))
	for i, item := range sg.Suggestions {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, item)
	}
	return sb.String()
}

// CatalogEntry is one goal type with its archetype sequence.
type CatalogEntry struct {
	GoalType   domain.GoalType     `json:"goal_type" yaml:"goal_type"`
	Keywords   []string            `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Archetypes []catalog.Archetype `json:"archetypes" yaml:"archetypes"`
}

// RenderCatalog lists every goal type and its archetypes.
func RenderCatalog(entries []CatalogEntry, s Styles) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(s.Title.Render(fmt.Sprintf("%s (%d tasks)", e.GoalType, len(e.Archetypes))))
		if len(e.Keywords) > 0 {
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render("  keywords: " + strings.Join(e.Keywords, ", ")))
		}
		for _, a := range e.Archetypes {
			fmt.Fprintf(&sb, "\n  - %s  [%s, %dh]", a.Title, s.priority(a.BaselinePriority), a.BaselineHours)
		}
	}
	return sb.String()
}

func highPriorityCount(tasks []plan.TaskDraft) int {
	n := 0
	for _, t := range tasks {
		if t.Priority.IsHigherThan(domain.PriorityMedium) {
			n++
		}
	}
	return n
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
