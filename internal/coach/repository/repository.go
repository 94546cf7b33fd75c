package repository

import (
	"context"
	"errors"
	"time"

	"frugal-friend/internal/entity"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned when a compare-and-swap update lost a race.
	ErrVersionConflict = errors.New("version conflict")
)

// PositionRepository defines the interface for paper-trading position storage.
type PositionRepository interface {
	FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.Position, error)
	FindByUser(ctx context.Context, userID uint) ([]entity.Position, error)
	// Save inserts a new position (ID == 0) or updates an existing one only if
	// its stored version still equals pos.Version. On success pos.Version is
	// incremented.
	Save(ctx context.Context, pos *entity.Position) error
}

// ActivityRepository exposes the facts derived from a user's logged activity.
type ActivityRepository interface {
	// ActivityDates returns the timestamps of every logged expense and income.
	ActivityDates(ctx context.Context, userID uint) ([]time.Time, error)
	DistinctExpenseCategories(ctx context.Context, userID uint) (int, error)
}

// ExpenseRepository defines the interface for expense storage.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByUser(ctx context.Context, userID uint) ([]entity.Expense, error)
}

// IncomeRepository defines the interface for income storage.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByUser(ctx context.Context, userID uint) ([]entity.Income, error)
}

// UserRepository defines the interface for user profile storage.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// FindOrCreate returns the user, creating an empty profile on first use.
	FindOrCreate(ctx context.Context, id uint) (*entity.User, error)
	GetLessonProgress(ctx context.Context, id uint) (int, error)
	// CompleteLesson moves progress from expected to next and grants achievement
	// in one write. Nothing changes when it fails; a stored progress other than
	// expected yields ErrVersionConflict.
	CompleteLesson(ctx context.Context, id uint, expected, next int, achievement string) error
	UpdateOnboarding(ctx context.Context, user *entity.User, goals []entity.Goal) error
}

// SimulatorSessionRepository defines the interface for simulator run storage.
type SimulatorSessionRepository interface {
	Create(ctx context.Context, session *entity.SimulatorSession) error
	// MaxMonthlyContribution returns the largest contribution of any saved run
	// and whether the user saved a run at all.
	MaxMonthlyContribution(ctx context.Context, userID uint) (float64, bool, error)
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
