package service

import (
	"context"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/ledger"
	"frugal-friend/internal/market"
	"frugal-friend/pkg/logger"
)

// PortfolioService defines the interface for reading a user's portfolio.
type PortfolioService interface {
	GetPortfolio(ctx context.Context, userID uint) (*dto.PortfolioResponse, error)
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(positionRepo repository.PositionRepository, oracle *market.Oracle, log *logger.Logger) PortfolioService {
	return &portfolioService{positionRepo: positionRepo, oracle: oracle, logger: log}
}

type portfolioService struct {
	positionRepo repository.PositionRepository
	oracle       *market.Oracle
	logger       *logger.Logger
}

// GetPortfolio values every held position at the current price.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID uint) (*dto.PortfolioResponse, error) {
	records, err := s.positionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError("load positions", err)
	}

	positions := make([]ledger.Position, len(records))
	for i, r := range records {
		positions[i] = ledger.Position{Symbol: r.Symbol, Shares: r.Shares, AverageCost: r.AverageCost}
	}
	summary := ledger.Summarize(positions, s.oracle.CurrentPrice)

	resp := &dto.PortfolioResponse{
		Holdings:            make([]dto.HoldingResponse, 0, len(summary.Holdings)),
		TotalPortfolioValue: summary.TotalPortfolioValue,
	}
	for _, h := range summary.Holdings {
		holding := dto.HoldingResponse{
			Symbol:                h.Symbol,
			Shares:                h.Shares,
			AverageCost:           h.AverageCost,
			CurrentPrice:          h.CurrentPrice,
			CurrentValue:          h.CurrentValue,
			UnrealizedGainPercent: h.UnrealizedGainPercent,
		}
		if asset, ok := s.oracle.Asset(h.Symbol); ok {
			holding.Name = asset.Name
		}
		resp.Holdings = append(resp.Holdings, holding)
	}
	return resp, nil
}
