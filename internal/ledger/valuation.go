package ledger

import "sort"

// Valuation is the mark-to-market view of a position.
type Valuation struct {
	CurrentPrice          float64
	CurrentValue          float64
	UnrealizedGainPercent float64
}

// MarkToMarket values pos at price.
func MarkToMarket(pos Position, price float64) Valuation {
	v := Valuation{
		CurrentPrice: price,
		CurrentValue: pos.Shares * price,
	}
	if pos.AverageCost > 0 {
		v.UnrealizedGainPercent = (price - pos.AverageCost) / pos.AverageCost * 100
	}
	return v
}

// Holding is a position with its valuation.
type Holding struct {
	Position
	Valuation
}

// Summary is a portfolio valued at current prices.
type Summary struct {
	Holdings            []Holding
	TotalPortfolioValue float64
}

// Summarize values every position with shares left, sorted by symbol.
func Summarize(positions []Position, priceOf func(symbol string) float64) Summary {
	s := Summary{Holdings: make([]Holding, 0, len(positions))}
	for _, p := range positions {
		if p.Shares <= 0 {
			continue
		}
		v := MarkToMarket(p, priceOf(p.Symbol))
		s.Holdings = append(s.Holdings, Holding{Position: p, Valuation: v})
	}
	sort.Slice(s.Holdings, func(i, j int) bool {
		return s.Holdings[i].Symbol < s.Holdings[j].Symbol
	})
	for _, h := range s.Holdings {
		s.TotalPortfolioValue += h.CurrentValue
	}
	return s
}
