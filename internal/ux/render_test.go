package ux

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
	"github.com/felixgeelhaar/taskplanner/internal/plan"
)

func TestRenderBreakdown(t *testing.T) {
	b := &plan.Breakdown{
		Reasoning:             "Because.",
		EstimatedDurationDays: 2,
		GoalType:              domain.GoalLearning,
		Fingerprint:           "0123456789abcdef0123",
		Tasks: []plan.TaskDraft{
			{Title: "Read", Description: "Read the book.", Priority: domain.PriorityHigh, EstimatedDurationHours: 8, Dependencies: []int{}},
			{Title: "Practice", Description: "Do exercises.", Priority: domain.PriorityLow, EstimatedDurationHours: 8, Dependencies: []int{0}, DueDateOffsetDays: 2},
		},
	}

	out := RenderBreakdown(b, NewStyles(true))

	for _, want := range []string{
		"Task breakdown (learning)",
		" 1. Read  [high, 8h, day 0]",
		" 2. Practice  [low, 8h, day 2]",
		"    after: 1",
		"Estimated duration: 2 days (16 hours)",
		"High priority: 1 of 2 tasks",
		"Because.",
		"fingerprint 0123456789ab",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBreakdown() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Fallback plan") {
		t.Error("non-fallback breakdown rendered the fallback banner")
	}
}

func TestRenderBreakdown_Fallback(t *testing.T) {
	out := RenderBreakdown(plan.Fallback("Fix the roof", nil), NewStyles(true))

	if !strings.HasPrefix(out, "Task breakdown\n") {
		t.Errorf("fallback header = %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "Fallback plan") {
		t.Errorf("missing fallback banner:\n%s", out)
	}
}

func TestRenderSuggestions(t *testing.T) {
	out := RenderSuggestions(Suggestions{Task: "Deploy", Suggestions: []string{"a", "b"}}, NewStyles(true))
	want := "Suggestions for Deploy\n  1. a\n  2. b"
	if out != want {
		t.Errorf("RenderSuggestions() = %q, want %q", out, want)
	}
}

func TestHighPriorityCount(t *testing.T) {
	tasks := []plan.TaskDraft{
		{Priority: domain.PriorityLow},
		{Priority: domain.PriorityMedium},
		{Priority: domain.PriorityHigh},
		{Priority: domain.PriorityUrgent},
	}
	if got := highPriorityCount(tasks); got != 2 {
		t.Errorf("highPriorityCount() = %d, want 2", got)
	}
}

func TestRenderCatalog_Keywords(t *testing.T) {
	entries := []CatalogEntry{{
		GoalType:   domain.GoalLearning,
		Keywords:   catalog.KeywordsFor(domain.GoalLearning),
		Archetypes: catalog.ArchetypesFor(domain.GoalLearning)[:1],
	}}

	out := RenderCatalog(entries, NewStyles(true))
	want := "learning (1 tasks)\n  keywords: learn, study, course, tutorial, skill\n  - Research Learning Resources  [high, 4h]"
	if out != want {
		t.Errorf("RenderCatalog() = %q, want %q", out, want)
	}
}

func TestRenderCatalog(t *testing.T) {
	entries := []CatalogEntry{{
		GoalType:   domain.GoalLearning,
		Archetypes: catalog.ArchetypesFor(domain.GoalLearning)[:2],
	}}

	out := RenderCatalog(entries, NewStyles(true))
	want := "learning (2 tasks)\n  - Research Learning Resources  [high, 4h]\n  - Set Learning Goals  [high, 2h]"
	if out != want {
		t.Errorf("RenderCatalog() = %q, want %q", out, want)
	}
}
