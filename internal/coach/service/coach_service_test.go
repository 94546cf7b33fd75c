package service

import (
	"context"
	"testing"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExpenses(t *testing.T, store *repository.MemoryStore, userID uint, amounts map[string]float64) {
	t.Helper()
	for category, amount := range amounts {
		require.NoError(t, store.Expenses().Create(context.Background(), &entity.Expense{
			OwnerID: userID, Amount: amount, Category: category, Date: time.Now(),
		}))
	}
}

func TestCoachSummary_NoExpenses(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	store := repository.NewMemoryStore()
	svc := NewCoachService(store.Users(), store.Expenses(), gen, logger.NewNop(), time.Second, time.Minute)

	resp, err := svc.Summary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, WelcomeSummary, resp.Summary)
	assert.False(t, resp.Generated)
	assert.Zero(t, gen.calls.Load())
}

func TestCoachSummary_GeneratedAndCached(t *testing.T) {
	gen := &stubGenerator{text: "## Your Weekly Financial Snapshot"}
	store := repository.NewMemoryStore()
	seedExpenses(t, store, 1, map[string]float64{"Food": 30, "Rent": 500, "Fun": 45})
	svc := NewCoachService(store.Users(), store.Expenses(), gen, logger.NewNop(), time.Second, time.Minute)

	first, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, first.Generated)
	assert.Equal(t, "Rent", first.HighestCategory)
	assert.Equal(t, 500.0, first.HighestSpent)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), gen.calls.Load())
}

func TestCoachSummary_OfflineFallbackIsNotCached(t *testing.T) {
	gen := &stubGenerator{err: assert.AnError}
	store := repository.NewMemoryStore()
	seedExpenses(t, store, 1, map[string]float64{"Food": 30})
	svc := NewCoachService(store.Users(), store.Expenses(), gen, logger.NewNop(), time.Second, time.Minute)

	resp, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, OfflineSummary, resp.Summary)
	assert.False(t, resp.Generated)
	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestHighestCategory(t *testing.T) {
	name, total := highestCategory(map[string]float64{"B": 10, "A": 10, "C": 2.345})
	assert.Equal(t, "A", name)
	assert.Equal(t, 10.0, total)

	name, total = highestCategory(nil)
	assert.Equal(t, "Uncategorized", name)
	assert.Zero(t, total)
}

func TestCoachSummary_NewExpenseRefreshesCachedSummary(t *testing.T) {
	gen := &stubGenerator{text: "## Your Weekly Financial Snapshot"}
	store := repository.NewMemoryStore()
	seedExpenses(t, store, 1, map[string]float64{"Food": 30})
	svc := NewCoachService(store.Users(), store.Expenses(), gen, logger.NewNop(), time.Second, time.Minute)
	activity := NewActivityService(store.Expenses(), store.Incomes(), store.Activity(), time.UTC, time.Now, logger.NewNop())

	first, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Food", first.HighestCategory)

	_, err = activity.LogExpense(context.Background(), 1, &dto.CreateExpenseRequest{Amount: 900, Category: "Travel"})
	require.NoError(t, err)

	second, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Travel", second.HighestCategory)
	assert.Equal(t, 900.0, second.HighestSpent)
	assert.Equal(t, int32(2), gen.calls.Load())
}

func TestCoachSummary_GroupsCategorySpellings(t *testing.T) {
	gen := &stubGenerator{text: "snapshot"}
	store := repository.NewMemoryStore()
	for _, e := range []struct {
		category string
		amount   float64
	}{{"Food", 20}, {"food ", 25}, {"Rent", 40}} {
		require.NoError(t, store.Expenses().Create(context.Background(), &entity.Expense{
			OwnerID: 1, Amount: e.amount, Category: e.category, Date: time.Now(),
		}))
	}
	svc := NewCoachService(store.Users(), store.Expenses(), gen, logger.NewNop(), time.Second, time.Minute)

	resp, err := svc.Summary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Food", resp.HighestCategory)
	assert.Equal(t, 45.0, resp.HighestSpent)

	categories, err := store.Activity().DistinctExpenseCategories(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, categories)
}
