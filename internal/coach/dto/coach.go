package dto

// CoachSummaryResponse is the personalized financial summary.
type CoachSummaryResponse struct {
	Summary         string  `json:"summary"`
	HighestCategory string  `json:"highest_category"`
	HighestSpent    float64 `json:"highest_spent"`
	Generated       bool    `json:"generated"`
}

// SimulatorRequest runs an investment projection.
type SimulatorRequest struct {
	StartAmount         float64 `json:"start_amount" example:"1000"`
	MonthlyContribution float64 `json:"monthly_contribution" example:"50"`
	Years               int     `json:"years" example:"10"`
	RiskLevel           string  `json:"risk_level" example:"Medium"` // Low, Medium or High
}

// SimulationResult is the projection of a simulator run.
type SimulationResult struct {
	StartAmount         float64 `json:"start_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	TotalYears          int     `json:"total_years"`
	AnnualRatePercent   float64 `json:"mock_annual_rate"`
	TotalContributed    float64 `json:"total_contributed"`
	ProjectedFinalValue float64 `json:"projected_final_value"`
	TotalGain           float64 `json:"total_gain"`
}

// SimulatorResponse is a saved simulator run.
type SimulatorResponse struct {
	SessionID     uint             `json:"session_id"`
	RiskLevel     string           `json:"risk_level"`
	Result        SimulationResult `json:"result"`
	CourseSummary string           `json:"course_summary"`
}
