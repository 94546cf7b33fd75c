package dto

// TradeRequest is the body of a paper trade.
type TradeRequest struct {
	Symbol    string  `json:"symbol" example:"TECH"`
	Action    string  `json:"action" example:"buy"` // "buy" or "sell"
	Amount    float64 `json:"amount" example:"250"` // in currency
	AssetType string  `json:"asset_type,omitempty" example:"Stock"`
}

// TradeOutcome is the result of a paper trade.
type TradeOutcome struct {
	Status      string  `json:"status"` // "success" or "failure"
	Message     string  `json:"message"`
	Advice      string  `json:"advice"`
	Symbol      string  `json:"symbol"`
	TradeID     string  `json:"trade_id,omitempty"`
	Action      string  `json:"action,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"average_cost"`
}

// HoldingResponse is one position valued at the current price.
type HoldingResponse struct {
	Symbol                string  `json:"symbol"`
	Name                  string  `json:"name,omitempty"`
	Shares                float64 `json:"shares"`
	AverageCost           float64 `json:"average_cost"`
	CurrentPrice          float64 `json:"current_price"`
	CurrentValue          float64 `json:"current_value"`
	UnrealizedGainPercent float64 `json:"unrealized_gain_percent"`
}

// PortfolioResponse lists a user's holdings.
type PortfolioResponse struct {
	Holdings            []HoldingResponse `json:"holdings"`
	TotalPortfolioValue float64           `json:"total_portfolio_value"`
}
