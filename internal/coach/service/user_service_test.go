package service

import (
	"context"
	"testing"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboard(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore().Users(), logger.NewNop())

	resp, err := svc.Onboard(context.Background(), 5, &dto.OnboardingRequest{
		Email:               "ana@example.com",
		FixedBudget:         1500,
		FinancialConfidence: 3,
		RiskTolerance:       "low",
		Goals:               []dto.GoalRequest{{Name: "Emergency fund", TargetAmount: 3000}},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, 1500.0, resp.FixedBudget)
	assert.Equal(t, 3, resp.FinancialConfidence)
	assert.Equal(t, "Low", resp.RiskTolerance)
	require.Len(t, resp.Goals, 1)
	assert.Equal(t, "Emergency fund", resp.Goals[0].Name)
}

func TestOnboard_ReplacesGoals(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore().Users(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.Onboard(ctx, 5, &dto.OnboardingRequest{Goals: []dto.GoalRequest{{Name: "A", TargetAmount: 1}, {Name: "B", TargetAmount: 2}}})
	require.NoError(t, err)
	resp, err := svc.Onboard(ctx, 5, &dto.OnboardingRequest{Goals: []dto.GoalRequest{{Name: "C", TargetAmount: 3}}})
	require.NoError(t, err)

	require.Len(t, resp.Goals, 1)
	assert.Equal(t, "C", resp.Goals[0].Name)
	assert.Equal(t, 5, resp.FinancialConfidence)
}

func TestOnboard_Validation(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore().Users(), logger.NewNop())

	cases := []dto.OnboardingRequest{
		{FixedBudget: -1},
		{FinancialConfidence: 11},
		{RiskTolerance: "wild"},
		{Goals: []dto.GoalRequest{{Name: "", TargetAmount: 10}}},
		{Goals: []dto.GoalRequest{{Name: "X", TargetAmount: 0}}},
	}
	for _, req := range cases {
		_, err := svc.Onboard(context.Background(), 1, &req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestProfile_CreatesEmptyProfile(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore().Users(), logger.NewNop())

	resp, err := svc.Profile(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.LessonProgress)
	assert.Empty(t, resp.Goals)
	assert.NotNil(t, resp.Achievements)
}
