package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestBuildTradeAdvicePrompt(t *testing.T) {
	ok := BuildTradeAdvicePrompt(TradeContext{Symbol: "TECH", Action: "buy", Amount: 100, Price: 50, Shares: 2, AverageCost: 50, Succeeded: true})
	assert.Contains(t, ok, "Symbol: TECH")
	assert.Contains(t, ok, "$100.00 at $50.00")

	rejected := BuildTradeAdvicePrompt(TradeContext{Symbol: "FIN", Action: "sell", Amount: 10, Reason: "insufficient shares to sell"})
	assert.Contains(t, rejected, "rejected: insufficient shares to sell")
}

func TestBuildFinancialSummaryPrompt(t *testing.T) {
	p := BuildFinancialSummaryPrompt(SummaryContext{
		FixedBudget:         1500,
		FinancialConfidence: 6,
		HighestCategory:     "Food",
		HighestSpent:        42.5,
		Expenses:            []ExpenseLine{{Category: "Food", Amount: 42.5}},
	})

	assert.Contains(t, p, "Monthly Fixed Budget: $1500.00")
	assert.Contains(t, p, "Goal: No Goal Set")
	assert.Contains(t, p, "Food ($42.50)")
	assert.Contains(t, p, "Category: Food, Amount: 42.50")
}

func TestBuildMicroCoursePrompt(t *testing.T) {
	p := BuildMicroCoursePrompt(CourseContext{GoalName: "House", FinancialConfidence: 4, ProjectedValue: 9000, TotalGain: 2000, Years: 5, AnnualRatePercent: 8})

	assert.Contains(t, p, "(8.0% mock rate)")
	assert.Contains(t, p, "Total Gain=$2000 over 5 years")
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: " Nice "}, {Text: "trade!"}}},
		}},
	}

	assert.Equal(t, "Nice trade!", extractText(resp))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", extractText(nil))
}

func TestDisabledTextGenerator(t *testing.T) {
	_, err := NewDisabledTextGenerator().GenerateText(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrGenerationDisabled)
}
