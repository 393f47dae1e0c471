package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSuggest_AlwaysGeneric(t *testing.T) {
	for _, title := range []string{"Market Research", "Implement login", "Integration test", "Paint the fence", ""} {
		t.Run(title, func(t *testing.T) {
			got := Suggest(title, "")
			require.Len(t, got, MaxSuggestions)
			assert.Equal(t, genericSuggestions, got)
		})
	}
}

func TestSuggest_ReturnsCopy(t *testing.T) {
	got := Suggest("anything", "")
	got[0] = "changed"
	assert.Equal(t, "Break down into smaller, more specific subtasks", Suggest("anything", "")[0])
}

func TestSuggest_CountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.String().Draw(t, "title")
		if n := len(Suggest(title, "")); n != MaxSuggestions {
			t.Fatalf("got %d suggestions for %q", n, title)
		}
	})
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		title      string
		complexity Complexity
		hours      int
		firstSkill string
	}{
		{"Research competitors", ComplexityLow, 4, "Research"},
		{"Configure CI", ComplexityLow, 4, "Research"},
		{"Develop Core Features", ComplexityHigh, 16, "Programming"},
		{"Validate inputs", ComplexityMedium, 8, "Testing"},
		{"Plan and build", ComplexityLow, 4, "Research"},
		{"Send Invitations", ComplexityMedium, 8, "General project management"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Analyze(tt.title)
			assert.Equal(t, tt.complexity, got.Complexity)
			assert.Equal(t, tt.hours, got.EstimatedHours)
			require.NotEmpty(t, got.RequiredSkills)
			assert.Equal(t, tt.firstSkill, got.RequiredSkills[0])
			assert.Equal(t, potentialChallenges, got.PotentialChallenges)
		})
	}
}

func TestAnalyze_SuggestedApproach(t *testing.T) {
	got := Analyze("Build the API")
	assert.Equal(t,
		"Break down the high complexity task into smaller steps and allocate appropriate time for each phase.",
		got.SuggestedApproach)
}
