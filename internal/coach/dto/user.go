package dto

// GoalRequest is a savings goal set during onboarding.
type GoalRequest struct {
	Name          string  `json:"name" example:"Emergency fund"`
	TargetAmount  float64 `json:"target_amount" example:"3000"`
	CurrentAmount float64 `json:"current_amount"`
}

// OnboardingRequest sets up the financial profile of a user.
type OnboardingRequest struct {
	Email               string        `json:"email,omitempty"`
	FixedBudget         float64       `json:"fixed_budget" example:"1200"`
	FinancialConfidence int           `json:"financial_confidence" example:"5"` // 1 to 10
	RiskTolerance       string        `json:"risk_tolerance,omitempty" example:"Medium"`
	TelegramChatID      *int64        `json:"telegram_chat_id,omitempty"`
	Goals               []GoalRequest `json:"goals"`
}

// GoalResponse is a stored goal.
type GoalResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

// UserResponse is the profile of a user.
type UserResponse struct {
	ID                  uint           `json:"id"`
	Email               string         `json:"email"`
	FixedBudget         float64        `json:"fixed_budget"`
	FinancialConfidence int            `json:"financial_confidence"`
	RiskTolerance       string         `json:"risk_tolerance,omitempty"`
	LessonProgress      int            `json:"lesson_progress"`
	Achievements        []string       `json:"achievements"`
	Goals               []GoalResponse `json:"goals"`
}
