// Package lesson gates sequential lesson unlocks behind behavioural criteria.
package lesson

import (
	"errors"
	"fmt"
)

// ErrAssignmentIncomplete is returned when the next lesson's criteria are not met yet.
var ErrAssignmentIncomplete = errors.New("assignment incomplete")

// Facts are the behavioural measurements a criterion is evaluated against.
type Facts struct {
	StreakDays                int
	HasSimulatorSession       bool
	MaxMonthlyContribution    float64
	DistinctExpenseCategories int
}

// Criteria is the unlock predicate of one lesson.
type Criteria struct {
	Key         string
	Description string
	met         func(Facts) bool
}

// Met reports whether facts satisfy the criteria.
func (c Criteria) Met(f Facts) bool {
	return c.met(f)
}

const (
	MinStreakDays          = 3
	MinMonthlyContribution = 50.0
	MinDistinctCategories  = 5

	KeyConsecutiveLogs    = "consecutive_logs_3"
	KeySimulatorRunMin50  = "simulator_run_min_50"
	KeyExpenseCategories5 = "expense_categories_5"
)

var criteria = map[int]Criteria{
	1: {
		Key:         KeyConsecutiveLogs,
		Description: fmt.Sprintf("Log an expense or income %d days in a row", MinStreakDays),
		met:         func(f Facts) bool { return f.StreakDays >= MinStreakDays },
	},
	2: {
		Key:         KeySimulatorRunMin50,
		Description: fmt.Sprintf("Save a simulator run contributing at least $%.0f per month", MinMonthlyContribution),
		met: func(f Facts) bool {
			return f.HasSimulatorSession && f.MaxMonthlyContribution >= MinMonthlyContribution
		},
	},
	3: {
		Key:         KeyExpenseCategories5,
		Description: fmt.Sprintf("Log expenses in %d different categories", MinDistinctCategories),
		met:         func(f Facts) bool { return f.DistinctExpenseCategories >= MinDistinctCategories },
	},
}

// CriteriaFor returns the unlock criteria of the lesson at index. Indices
// outside the known set use the criteria of lesson 1.
func CriteriaFor(index int) Criteria {
	if c, ok := criteria[index]; ok {
		return c
	}
	return criteria[1]
}

// Evaluate reports whether the lesson after progress can be unlocked.
func Evaluate(progress int, f Facts) bool {
	return CriteriaFor(progress + 1).Met(f)
}

// Advance returns progress+1 when the next lesson's criteria hold, otherwise
// progress unchanged and ErrAssignmentIncomplete.
func Advance(progress int, f Facts) (int, error) {
	if !Evaluate(progress, f) {
		return progress, fmt.Errorf("%w: %s", ErrAssignmentIncomplete, CriteriaFor(progress+1).Key)
	}
	return progress + 1, nil
}
