package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	res := Project(1000, 0, 1, entity.RiskLow)

	assert.Equal(t, 5.0, res.AnnualRatePercent)
	assert.InDelta(t, 1051.16, res.ProjectedFinalValue, 0.005)
	assert.Equal(t, 1000.0, res.TotalContributed)
	assert.InDelta(t, 51.16, res.TotalGain, 0.005)
}

func TestProject_MonthlyContributions(t *testing.T) {
	res := Project(0, 100, 10, entity.RiskMedium)

	// Future value of an ordinary annuity at 8%/12 for 120 months.
	assert.InDelta(t, 18294.60, res.ProjectedFinalValue, 0.01)
	assert.Equal(t, 12000.0, res.TotalContributed)
	assert.Equal(t, 8.0, res.AnnualRatePercent)
}

func TestProject_HigherRiskGrowsFaster(t *testing.T) {
	low := Project(500, 50, 5, entity.RiskLow)
	high := Project(500, 50, 5, entity.RiskHigh)

	assert.Greater(t, high.ProjectedFinalValue, low.ProjectedFinalValue)
	assert.Equal(t, low.TotalContributed, high.TotalContributed)
}

func TestParseRiskLevel(t *testing.T) {
	level, err := ParseRiskLevel("medium")
	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, level)

	_, err = ParseRiskLevel("extreme")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSimulatorRun(t *testing.T) {
	store := repository.NewMemoryStore()
	gen := &stubGenerator{text: "**Your 5-Minute Investment Masterclass**"}
	svc := NewSimulatorService(store.SimulatorSessions(), store.Users(), gen, logger.NewNop(), time.Second)

	resp, err := svc.Run(context.Background(), 4, &dto.SimulatorRequest{StartAmount: 1000, MonthlyContribution: 60, Years: 3, RiskLevel: "high"})

	require.NoError(t, err)
	assert.NotZero(t, resp.SessionID)
	assert.Equal(t, "High", resp.RiskLevel)
	assert.Equal(t, gen.text, resp.CourseSummary)

	best, found, err := store.SimulatorSessions().MaxMonthlyContribution(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 60.0, best)
}

func TestSimulatorRun_CourseFallback(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSimulatorService(store.SimulatorSessions(), store.Users(), repository.NewDisabledTextGenerator(), logger.NewNop(), time.Second)

	resp, err := svc.Run(context.Background(), 4, &dto.SimulatorRequest{StartAmount: 100, MonthlyContribution: 10, Years: 1, RiskLevel: "Low"})

	require.NoError(t, err)
	assert.Equal(t, OfflineCourse, resp.CourseSummary)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"mock_annual_rate":5`)
}

func TestSimulatorRun_Validation(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSimulatorService(store.SimulatorSessions(), store.Users(), repository.NewDisabledTextGenerator(), logger.NewNop(), time.Second)

	cases := []dto.SimulatorRequest{
		{StartAmount: -1, MonthlyContribution: 10, Years: 1, RiskLevel: "Low"},
		{StartAmount: 1, MonthlyContribution: 10, Years: 0, RiskLevel: "Low"},
		{StartAmount: 1, MonthlyContribution: 10, Years: 1, RiskLevel: ""},
	}
	for _, req := range cases {
		_, err := svc.Run(context.Background(), 1, &req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}
