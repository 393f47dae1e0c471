package plan

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskplanner/internal/catalog"
	"github.com/felixgeelhaar/taskplanner/internal/domain"
	"github.com/felixgeelhaar/taskplanner/internal/log"
)

func fixedIDs() Option {
	return WithRequestIDs(func() string { return "req-1" })
}

func TestGenerate_MobileScenario(t *testing.T) {
	g := NewGenerator(fixedIDs())

	b := g.Generate(context.Background(), Request{
		Goal:          "Launch a mobile app in 3 weeks",
		TimelineWeeks: 3,
		Context:       "Solo developer, first mobile app, using React Native",
	})

	require.False(t, b.Fallback)
	assert.Equal(t, domain.GoalMobileApp, b.GoalType)
	require.Len(t, b.Tasks, 12)
	assert.Equal(t, "Define App Requirements", b.Tasks[0].Title)
	assert.True(t, strings.HasPrefix(b.Reasoning,
		"Analyzed the goal 'Launch a mobile app in 3 weeks' and identified it as a mobile app project."))
	assert.Contains(t, b.Reasoning, "Adjusted task durations to fit within the 3-week timeline.")
	assert.Equal(t, 13, b.EstimatedDurationDays)
	assert.Equal(t, 104, b.TotalHours())

	for i, task := range b.Tasks {
		assert.Equal(t, domain.PriorityHigh, task.Priority, "launch is a high keyword: %s", task.Title)
		assert.LessOrEqual(t, task.EstimatedDurationHours, 10, task.Title)
		assert.Equal(t, i*2, task.DueDateOffsetDays, task.Title)
	}

	assert.Equal(t, "Complete the define app requirements phase for launch a mobile app in 3 weeks.", b.Tasks[0].Description)
	assert.Equal(t, "Create designs and mockups for launch a mobile app in 3 weeks focusing on user experience.", b.Tasks[6].Description)
	assert.Equal(t, []int{2, 3, 4, 6}, b.Tasks[7].Dependencies)

	assert.Equal(t, "req-1", b.RequestID)
	assert.Equal(t, b.ComputeFingerprint(), b.Fingerprint)
	assert.NoError(t, b.Validate())
}

func TestGenerate_ContextDrivesClassificationAndPriority(t *testing.T) {
	plain := Generate(context.Background(), Request{Goal: "Ship my side project"})
	require.Equal(t, domain.GoalProductLaunch, plain.GoalType)
	assert.Equal(t, domain.PriorityMedium, plain.Tasks[0].Priority)

	withContext := Generate(context.Background(), Request{Goal: "Ship my side project", Context: "urgent, using React Native"})
	require.Equal(t, domain.GoalMobileApp, withContext.GoalType)
	for _, task := range withContext.Tasks {
		assert.Equal(t, domain.PriorityHigh, task.Priority, task.Title)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	req := Request{Goal: "Organize a team offsite event", TimelineWeeks: 2, Context: "budget is tight"}

	first := Generate(context.Background(), req)
	second := Generate(context.Background(), req)

	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	first.RequestID, second.RequestID = "", ""
	assert.Equal(t, first, second)
}

func TestGenerate_EveryGoalTypeHasCatalogSize(t *testing.T) {
	goals := map[domain.GoalType]string{
		domain.GoalMobileApp:       "Build an iOS client",
		domain.GoalLearning:        "Take a course on databases",
		domain.GoalEventPlanning:   "Throw a birthday party",
		domain.GoalBusinessStartup: "Found a startup",
		domain.GoalProductLaunch:   "Release the new product",
	}

	for gt, goal := range goals {
		t.Run(gt.String(), func(t *testing.T) {
			b := Generate(context.Background(), Request{Goal: goal})
			assert.Equal(t, gt, b.GoalType)
			assert.Len(t, b.Tasks, len(catalog.ArchetypesFor(gt)))
			assert.NotContains(t, b.Reasoning, "Adjusted task durations")
		})
	}
}

func TestGenerate_NegativeTimelineFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: log.LevelDebug, Format: log.FormatText, Output: &buf})

	b := NewGenerator(WithLogger(logger), fixedIDs()).
		Generate(context.Background(), Request{Goal: "Write a novel", TimelineWeeks: -2})

	require.True(t, b.Fallback)
	require.Len(t, b.Tasks, 4)
	assert.Equal(t, FallbackDurationDays, b.EstimatedDurationDays)
	assert.Contains(t, b.Reasoning, "TIMELINE-001")
	assert.Equal(t, "Plan and Research Write a novel", b.Tasks[0].Title)
	assert.Equal(t, "req-1", b.RequestID)
	assert.NotEmpty(t, b.Fingerprint)
	assert.Contains(t, buf.String(), "using fallback plan")
}

func TestGenerate_PanicFallsBack(t *testing.T) {
	var buf bytes.Buffer
	g := NewGenerator(fixedIDs(), WithLogger(log.New(log.Config{Level: log.LevelError, Format: log.FormatText, Output: &buf})))
	g.customize = func([]catalog.Archetype, string, string, int) ([]TaskDraft, error) {
		panic("catalog exploded")
	}

	b := g.Generate(context.Background(), Request{Goal: "Launch a mobile app"})

	require.True(t, b.Fallback)
	assert.Contains(t, b.Reasoning, "breakdown panicked: catalog exploded")
	assert.Equal(t, []int{2}, b.Tasks[3].Dependencies)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `panic="catalog exploded"`)
}

func TestNewGenerator_UsesDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetDefaultLogger(log.New(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf}))
	t.Cleanup(func() { log.SetDefaultLogger(nil) })

	b := NewGenerator().Generate(context.Background(), Request{Goal: "Learn Go", TimelineWeeks: -1})

	require.True(t, b.Fallback)
	assert.Contains(t, buf.String(), "using fallback plan")
}

func TestGenerate_CustomizeErrorFallsBack(t *testing.T) {
	g := NewGenerator()
	g.customize = func([]catalog.Archetype, string, string, int) ([]TaskDraft, error) {
		return nil, fmt.Errorf("no archetypes")
	}

	b := g.Generate(context.Background(), Request{Goal: "anything"})

	assert.True(t, b.Fallback)
	assert.Contains(t, b.Reasoning, "customize tasks: no archetypes")
}

func TestGenerate_Concurrent(t *testing.T) {
	g := NewGenerator()
	req := Request{Goal: "Study machine learning", TimelineWeeks: 4}
	want := g.Generate(context.Background(), req).Fingerprint

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Generate(context.Background(), req).Fingerprint
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}
