package repository

import (
	"fmt"
	"strings"
)

// TradeContext is what the trade advice prompt knows about a completed or rejected trade.
type TradeContext struct {
	Symbol      string
	Action      string
	Amount      float64
	Price       float64
	Shares      float64
	AverageCost float64
	Succeeded   bool
	Reason      string
}

func BuildTradeAdvicePrompt(t TradeContext) string {
	if !t.Succeeded {
		return fmt.Sprintf(`You are 'Frugal Friend', a supportive financial coach for beginners using a paper-trading simulator.
The user tried to %s $%.2f of %s but the trade was rejected: %s.
In at most two sentences, console the user kindly and explain what they can do instead. No markdown.`,
			t.Action, t.Amount, t.Symbol, t.Reason)
	}

	return fmt.Sprintf(`You are 'Frugal Friend', a supportive financial coach for beginners using a paper-trading simulator.
The user just completed a simulated trade:
- Action: %s
- Symbol: %s
- Amount: $%.2f at $%.2f per share
- Position now: %.4f shares at an average cost of $%.2f

In at most two sentences, congratulate the user and give one practical tip about diversification or long-term investing. No markdown.`,
		t.Action, t.Symbol, t.Amount, t.Price, t.Shares, t.AverageCost)
}

// SummaryContext is the data behind the weekly financial snapshot.
type SummaryContext struct {
	FixedBudget         float64
	FinancialConfidence int
	GoalName            string
	HighestCategory     string
	HighestSpent        float64
	Expenses            []ExpenseLine
}

// ExpenseLine is one expense rendered into a prompt.
type ExpenseLine struct {
	Category string
	Amount   float64
}

func BuildFinancialSummaryPrompt(s SummaryContext) string {
	goal := s.GoalName
	if goal == "" {
		goal = "No Goal Set"
	}

	var lines strings.Builder
	for _, e := range s.Expenses {
		lines.WriteString(fmt.Sprintf("Category: %s, Amount: %.2f\n", e.Category, e.Amount))
	}

	return fmt.Sprintf(`SYSTEM ROLE: You are 'Frugal Friend,' a supportive, expert financial coach. Analyze the user's spending and goals to provide a summary in a friendly, non-judgmental tone.

USER FINANCIAL DATA:
- Monthly Fixed Budget: $%.2f
- Financial Confidence Score: %d/10
- Goal: %s
- Highest Spending Category (Recent): %s ($%.2f)

RECENT EXPENSES:
%s
INSTRUCTIONS:
1. **Quick Win:** Find one positive aspect (e.g., consistency, low spending in a non-essential area, or simply logging daily).
2. **Awareness Check:** Address the highest spending category identified in the data. Frame it as an opportunity.
3. **Next Step Nudge:** Provide ONE specific, behaviorally-informed action to reduce spending in that highest category.

RESPOND ONLY in the following exact format (use the exact headings and Markdown):
## Your Weekly Financial Snapshot 🧭
### ✅ Great Job!
[One sentence of positive reinforcement.]

### 🚩 Awareness Check
[One sentence identifying the problem category and total spent this period.]

### 🚀 Next Step Nudge
[One specific, actionable tip for habit change.]`,
		s.FixedBudget, s.FinancialConfidence, goal, s.HighestCategory, s.HighestSpent, lines.String())
}

// CourseContext is the data behind the investment micro-course.
type CourseContext struct {
	GoalName            string
	FinancialConfidence int
	ProjectedValue      float64
	TotalGain           float64
	Years               int
	AnnualRatePercent   float64
}

func BuildMicroCoursePrompt(c CourseContext) string {
	return fmt.Sprintf(`SYSTEM ROLE: You are an expert financial educator. Your goal is to simplify investment concepts based on the user's simulation.

INSTRUCTIONS:
1. Create a title: **Your 5-Minute Investment Masterclass**
2. Explain the power of **compound interest** using the user's projected gain ($%.0f) as the primary example.
3. Explain the **mock risk level** (%.1f%% mock rate) in simple terms, adjusted for the user's confidence (%d/10).
4. End with one **simple action step** to "start paper trading."

DATA: Goal: %s. Simulation Result: Projected Value=$%.0f, Total Gain=$%.0f over %d years.`,
		c.TotalGain, c.AnnualRatePercent, c.FinancialConfidence, c.GoalName, c.ProjectedValue, c.TotalGain, c.Years)
}
