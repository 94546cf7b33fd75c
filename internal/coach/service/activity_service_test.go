package service

import (
	"context"
	"testing"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(store *repository.MemoryStore, loc *time.Location, now time.Time) ActivityService {
	return NewActivityService(store.Expenses(), store.Incomes(), store.Activity(), loc, fixedClock(now), logger.NewNop())
}

func TestLogExpense(t *testing.T) {
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	svc := newActivityService(repository.NewMemoryStore(), time.UTC, now)

	resp, err := svc.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 12.5, Category: " Food ", Note: "lunch"})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Food", resp.Category)
	assert.Equal(t, now, resp.Date)
}

func TestLogExpense_NormalizesCategory(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newActivityService(store, time.UTC, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))

	for _, category := range []string{"food", "FOOD ", "  fast  food"} {
		_, err := svc.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 1, Category: category})
		require.NoError(t, err)
	}

	expenses, err := svc.ListExpenses(context.Background(), 1)
	require.NoError(t, err)
	got := make([]string, 0, len(expenses))
	for _, e := range expenses {
		got = append(got, e.Category)
	}
	assert.ElementsMatch(t, []string{"Food", "Food", "Fast Food"}, got)

	categories, err := store.Activity().DistinctExpenseCategories(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, categories)
}

func TestLogExpense_Validation(t *testing.T) {
	svc := newActivityService(repository.NewMemoryStore(), time.UTC, time.Now())

	_, err := svc.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 0, Category: "Food"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 3, Category: ""})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 3, Category: "   "})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.LogIncome(context.Background(), 1, &dto.CreateIncomeRequest{Amount: 3})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetStreak_CountsExpensesAndIncomes(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()
	svc := newActivityService(store, time.UTC, now)
	ctx := context.Background()

	_, err := svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 1, Category: "Food"})
	require.NoError(t, err)
	_, err = svc.LogIncome(ctx, 1, &dto.CreateIncomeRequest{Amount: 1, Source: "Salary", Date: utils.ToPointer(now.AddDate(0, 0, -1))})
	require.NoError(t, err)
	_, err = svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 1, Category: "Fun", Date: utils.ToPointer(now.AddDate(0, 0, -3))})
	require.NoError(t, err)

	resp, err := svc.GetStreak(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.StreakDays)
	assert.Equal(t, "2024-01-10", resp.Today)
}

func TestGetStreak_UsesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 18:00 UTC on Jan 9 is Jan 10 01:00 at UTC+7.
	now := time.Date(2024, 1, 9, 18, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStore()
	svc := newActivityService(store, loc, now)
	ctx := context.Background()

	_, err := svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 1, Category: "Food", Date: utils.ToPointer(now)})
	require.NoError(t, err)
	_, err = svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 1, Category: "Food", Date: utils.ToPointer(now.Add(-12 * time.Hour))})
	require.NoError(t, err)

	resp, err := svc.GetStreak(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", resp.Today)
	assert.Equal(t, 2, resp.StreakDays)
}

func TestListExpenses_NewestFirst(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := newActivityService(repository.NewMemoryStore(), time.UTC, now)
	ctx := context.Background()

	_, err := svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 1, Category: "Old", Date: utils.ToPointer(now.AddDate(0, 0, -2))})
	require.NoError(t, err)
	_, err = svc.LogExpense(ctx, 1, &dto.CreateExpenseRequest{Amount: 2, Category: "New"})
	require.NoError(t, err)

	expenses, err := svc.ListExpenses(ctx, 1)

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "New", expenses[0].Category)
}
