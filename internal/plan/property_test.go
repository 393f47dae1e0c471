package plan

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
)

var goalWords = []string{
	"launch", "mobile", "app", "learn", "course", "party", "conference",
	"startup", "business", "website", "release", "urgent", "optional",
	"garden", "novel", "support", "the", "a", "new",
}

func TestGenerate_Properties(t *testing.T) {
	g := NewGenerator(WithRequestIDs(func() string { return "prop" }))

	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom(goalWords), 1, 6).Draw(t, "words")
		goal := strings.Join(words, " ")
		weeks := rapid.IntRange(0, 12).Draw(t, "weeks")
		ctxText := rapid.SampledFrom([]string{"", "critical deadline", "nice-to-have"}).Draw(t, "context")

		b := g.Generate(context.Background(), Request{Goal: goal, TimelineWeeks: weeks, Context: ctxText})

		if b.Fallback {
			t.Fatalf("unexpected fallback for %q: %s", goal, b.Reasoning)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("invalid breakdown for %q: %v", goal, err)
		}

		archetypes := catalog.ArchetypesFor(b.GoalType)
		if len(b.Tasks) != len(archetypes) {
			t.Fatalf("got %d tasks, want %d", len(b.Tasks), len(archetypes))
		}
		if b.EstimatedDurationDays != max(1, b.TotalHours()/8) {
			t.Fatalf("days %d do not match %d hours", b.EstimatedDurationDays, b.TotalHours())
		}

		for i, task := range b.Tasks {
			for _, dep := range task.Dependencies {
				if dep >= i {
					t.Fatalf("task %d depends on later task %d", i, dep)
				}
			}
			if i > 0 && !toSet(task.Dependencies).Has(i-1) {
				t.Fatalf("task %d does not depend on its predecessor", i)
			}
			if task.DueDateOffsetDays != 2*i {
				t.Fatalf("task %d offset %d", i, task.DueDateOffsetDays)
			}
			if task.EstimatedDurationHours != archetypes[i].BaselineHours {
				if weeks == 0 {
					t.Fatalf("task %d scaled without a timeline", i)
				}
				if task.EstimatedDurationHours < minClampedHours {
					t.Fatalf("task %d clamped below floor: %d", i, task.EstimatedDurationHours)
				}
			}
		}
	})
}

func toSet(deps []int) IndexSet {
	s := IndexSet{}
	for _, d := range deps {
		s.Add(d)
	}
	return s
}
