package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_FirstLessonWithThreeDayStreak(t *testing.T) {
	progress, err := Advance(0, Facts{StreakDays: 3})

	require.NoError(t, err)
	assert.Equal(t, 1, progress)
}

func TestAdvance_FirstLessonWithShortStreak(t *testing.T) {
	progress, err := Advance(0, Facts{StreakDays: 1})

	assert.ErrorIs(t, err, ErrAssignmentIncomplete)
	assert.Equal(t, 0, progress)
}

func TestAdvance_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		facts    Facts
		wantOK   bool
	}{
		{"lesson 2 met", 1, Facts{HasSimulatorSession: true, MaxMonthlyContribution: 50}, true},
		{"lesson 2 contribution too low", 1, Facts{HasSimulatorSession: true, MaxMonthlyContribution: 49.99}, false},
		{"lesson 2 no session", 1, Facts{StreakDays: 10}, false},
		{"lesson 3 met", 2, Facts{DistinctExpenseCategories: 5}, true},
		{"lesson 3 four categories", 2, Facts{DistinctExpenseCategories: 4}, false},
		{"beyond catalog uses lesson 1", 3, Facts{StreakDays: 3}, true},
		{"beyond catalog ignores other facts", 7, Facts{DistinctExpenseCategories: 9, HasSimulatorSession: true, MaxMonthlyContribution: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Advance(tt.progress, tt.facts)
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, tt.progress+1, got)
				return
			}
			assert.ErrorIs(t, err, ErrAssignmentIncomplete)
			assert.Equal(t, tt.progress, got)
		})
	}
}

func TestCriteriaFor(t *testing.T) {
	assert.Equal(t, KeyConsecutiveLogs, CriteriaFor(1).Key)
	assert.Equal(t, KeySimulatorRunMin50, CriteriaFor(2).Key)
	assert.Equal(t, KeyExpenseCategories5, CriteriaFor(3).Key)
	assert.Equal(t, KeyConsecutiveLogs, CriteriaFor(4).Key)
	assert.Equal(t, KeyConsecutiveLogs, CriteriaFor(0).Key)
	assert.NotEmpty(t, CriteriaFor(2).Description)
}

func TestCatalog(t *testing.T) {
	all := Lessons()
	require.Len(t, all, 3)
	assert.Equal(t, "Introduction to Stock Markets", all[0].Title)

	l, ok := Get(3)
	assert.True(t, ok)
	assert.Equal(t, "Mutual Funds Explained", l.Title)

	_, ok = Get(4)
	assert.False(t, ok)

	assert.Equal(t, "lesson_2_complete", AchievementKey(2))
}
