package service

import (
	"context"
	"errors"
	"math"
	"time"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/repository"
	"frugal-friend/internal/entity"
	"frugal-friend/internal/ledger"
	"frugal-friend/internal/market"
	"frugal-friend/pkg/common"
	"frugal-friend/pkg/lock"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/metrics"

	"github.com/google/uuid"
)

// PriceSource resolves the current price of a symbol.
type PriceSource interface {
	CurrentPrice(symbol string) float64
}

// TradeService defines the interface for executing paper trades.
type TradeService interface {
	ExecuteTrade(ctx context.Context, userID uint, req *dto.TradeRequest) (*dto.TradeOutcome, error)
}

// NewTradeService creates a new trade service.
func NewTradeService(
	positionRepo repository.PositionRepository,
	prices PriceSource,
	locker lock.Locker,
	generator repository.TextGenerator,
	log *logger.Logger,
	adviceTimeout time.Duration,
) TradeService {
	return &tradeService{
		positionRepo: positionRepo,
		prices:       prices,
		locker:       locker,
		text:         &textWriter{generator: generator, timeout: adviceTimeout, logger: log},
		logger:       log,
	}
}

type tradeService struct {
	positionRepo repository.PositionRepository
	prices       PriceSource
	locker       lock.Locker
	text         *textWriter
	logger       *logger.Logger
}

// ExecuteTrade validates the request, applies it to the user's position under
// a per-position lock and then asks for a short coaching message. A business
// rejection returns a failure outcome together with the ledger error.
func (s *tradeService) ExecuteTrade(ctx context.Context, userID uint, req *dto.TradeRequest) (*dto.TradeOutcome, error) {
	symbol := market.NormalizeSymbol(req.Symbol)
	outcome := &dto.TradeOutcome{Status: common.StatusFailure, Symbol: symbol}

	action, err := ledger.ParseAction(req.Action)
	if err != nil {
		outcome.Message = "Action must be buy or sell."
		return outcome, err
	}
	outcome.Action = string(action)
	if symbol == "" {
		outcome.Message = "Symbol is required."
		return outcome, invalidRequest("symbol is required")
	}
	if !(req.Amount > 0) || math.IsInf(req.Amount, 0) {
		outcome.Message = "Amount must be greater than zero."
		return outcome, ledger.ErrInvalidAmount
	}

	price := s.prices.CurrentPrice(symbol)
	outcome.Price = price

	ctx = logger.WithContext(ctx,
		logger.Field("user_id", userID),
		logger.StringField("symbol", symbol),
		logger.StringField("action", string(action)),
	)

	pos, err := s.applyLocked(ctx, userID, symbol, price, req.Amount, action)
	if err != nil {
		metrics.TradesTotal.WithLabelValues(string(action), common.StatusFailure).Inc()
		if errors.Is(err, ErrPersistenceFailure) {
			s.logger.ErrorContext(ctx, "Trade was not persisted", logger.ErrorField(err))
			outcome.Message = "We couldn't save your trade. Please try again."
			return outcome, err
		}

		s.logger.InfoContext(ctx, "Trade rejected", logger.ErrorField(err))
		outcome.Message = rejectionMessage(err)
		outcome.Advice, _ = s.text.write(ctx, "trade_advice", repository.BuildTradeAdvicePrompt(repository.TradeContext{
			Symbol: symbol,
			Action: string(action),
			Amount: req.Amount,
			Price:  price,
			Reason: err.Error(),
		}), FallbackConsolation)
		return outcome, err
	}

	metrics.TradesTotal.WithLabelValues(string(action), common.StatusSuccess).Inc()
	s.logger.InfoContext(ctx, "Trade executed",
		logger.FloatField("amount", req.Amount),
		logger.FloatField("price", price),
		logger.FloatField("shares", pos.Shares),
	)

	outcome.Status = common.StatusSuccess
	outcome.TradeID = uuid.NewString()
	outcome.Shares = pos.Shares
	outcome.AverageCost = pos.AverageCost
	outcome.Message = successMessage(action, symbol)
	outcome.Advice, _ = s.text.write(ctx, "trade_advice", repository.BuildTradeAdvicePrompt(repository.TradeContext{
		Symbol:      symbol,
		Action:      string(action),
		Amount:      req.Amount,
		Price:       price,
		Shares:      pos.Shares,
		AverageCost: pos.AverageCost,
		Succeeded:   true,
	}), FallbackAdvice)
	return outcome, nil
}

// applyLocked runs the read-modify-write of one position while holding its lock.
func (s *tradeService) applyLocked(ctx context.Context, userID uint, symbol string, price, amount float64, action ledger.Action) (*entity.Position, error) {
	unlock, err := s.locker.Lock(ctx, lock.PositionKey(userID, symbol))
	if err != nil {
		return nil, persistenceError("acquire position lock", err)
	}
	defer unlock()

	start := time.Now()
	defer func() {
		metrics.TradeLatency.WithLabelValues(string(action)).Observe(time.Since(start).Seconds())
	}()

	record, err := s.positionRepo.FindByUserAndSymbol(ctx, userID, symbol)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, persistenceError("load position", err)
	}

	var current *ledger.Position
	if record != nil {
		current = &ledger.Position{Symbol: record.Symbol, Shares: record.Shares, AverageCost: record.AverageCost}
	} else {
		record = &entity.Position{UserID: userID, Symbol: symbol}
	}

	next, err := ledger.Apply(current, price, amount, action)
	if err != nil {
		return nil, err
	}

	updated := *record
	updated.Shares = next.Shares
	updated.AverageCost = next.AverageCost
	if err := s.positionRepo.Save(ctx, &updated); err != nil {
		return nil, persistenceError("save position", err)
	}
	return &updated, nil
}

func successMessage(action ledger.Action, symbol string) string {
	if action == ledger.Buy {
		return "Bought " + symbol + " successfully."
	}
	return "Sold " + symbol + " successfully."
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInsufficientPosition):
		return "You don't own this asset yet."
	case errors.Is(err, ledger.ErrInsufficientShares):
		return "You don't have enough shares for this sale."
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Amount must be greater than zero."
	default:
		return "Trade could not be completed."
	}
}
