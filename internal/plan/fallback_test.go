package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskplanner/internal/domain"
)

func TestFallback(t *testing.T) {
	b := Fallback("Build a shed", fmt.Errorf("boom"))

	require.Len(t, b.Tasks, 4)
	assert.True(t, b.Fallback)
	assert.Equal(t, FallbackDurationDays, b.EstimatedDurationDays)
	assert.Equal(t, "Generated a generic fallback plan because the breakdown could not be completed. Error: boom", b.Reasoning)

	assert.Equal(t, "Plan and Research Build a shed", b.Tasks[0].Title)
	assert.Equal(t, "Implement Core Features for Build a shed", b.Tasks[1].Title)
	assert.Equal(t, "Test and Validate Build a shed", b.Tasks[2].Title)
	assert.Equal(t, "Deploy and Launch Build a shed", b.Tasks[3].Title)

	wantPriorities := []domain.Priority{domain.PriorityHigh, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityHigh}
	wantHours := []int{8, 16, 8, 4}
	wantDeps := [][]int{{}, {0}, {1}, {2}}
	for i, task := range b.Tasks {
		assert.Equal(t, wantPriorities[i], task.Priority, task.Title)
		assert.Equal(t, wantHours[i], task.EstimatedDurationHours, task.Title)
		assert.Equal(t, wantDeps[i], task.Dependencies, task.Title)
		assert.Equal(t, i*2, task.DueDateOffsetDays, task.Title)
	}

	assert.NoError(t, b.Validate())
}

func TestFallback_NilCause(t *testing.T) {
	b := Fallback("x", nil)
	assert.Contains(t, b.Reasoning, "Error: unknown error")
}
