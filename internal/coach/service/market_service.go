package service

import (
	"fmt"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/market"
)

// MarketService exposes the synthetic price feed.
type MarketService interface {
	ListAssets() []dto.AssetResponse
	GetHistory(symbol string) (*dto.AssetHistoryResponse, error)
}

// NewMarketService creates a new market service.
func NewMarketService(oracle *market.Oracle) MarketService {
	return &marketService{oracle: oracle}
}

type marketService struct {
	oracle *market.Oracle
}

func (s *marketService) ListAssets() []dto.AssetResponse {
	quotes := s.oracle.Assets()
	assets := make([]dto.AssetResponse, len(quotes))
	for i, q := range quotes {
		assets[i] = dto.AssetResponse{
			Symbol:        q.Symbol,
			Name:          q.Name,
			Category:      q.Category,
			Type:          string(q.Type),
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
		}
	}
	return assets
}

func (s *marketService) GetHistory(symbol string) (*dto.AssetHistoryResponse, error) {
	symbol = market.NormalizeSymbol(symbol)
	points, ok := s.oracle.History(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, symbol)
	}

	resp := &dto.AssetHistoryResponse{Symbol: symbol, History: make([]dto.PricePointResponse, len(points))}
	for i, p := range points {
		resp.History[i] = dto.PricePointResponse{Date: p.Date, Price: p.Price}
	}
	return resp, nil
}
