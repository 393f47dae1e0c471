package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoalType(t *testing.T) {
	for _, v := range []string{"mobile_app", "learning", "event_planning", "business_startup", "product_launch"} {
		g, err := NewGoalType(v)
		require.NoError(t, err, v)
		assert.Equal(t, v, g.String())
	}

	_, err := NewGoalType("website")
	assert.Error(t, err)

	_, err = NewGoalType("")
	assert.Error(t, err)
}

func TestGoalType_Label(t *testing.T) {
	assert.Equal(t, "mobile app", GoalMobileApp.Label())
	assert.Equal(t, "business startup", GoalBusinessStartup.Label())
	assert.Equal(t, "learning", GoalLearning.Label())
}

func TestDefaultGoalType(t *testing.T) {
	assert.Equal(t, GoalProductLaunch, DefaultGoalType)
}
