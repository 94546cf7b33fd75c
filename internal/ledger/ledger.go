// Package ledger applies paper trades to a position using weighted-average cost accounting.
package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Epsilon is the remaining share count below which a position is considered fully sold.
const Epsilon = 1e-4

var (
	// ErrInsufficientPosition is returned when selling a symbol that was never bought.
	ErrInsufficientPosition = errors.New("no position to sell")
	// ErrInsufficientShares is returned when a sell needs more shares than are held.
	ErrInsufficientShares = errors.New("insufficient shares to sell")
	// ErrInvalidAction is returned for an action other than buy or sell.
	ErrInvalidAction = errors.New("invalid trade action")
	// ErrInvalidAmount is returned when the price or the amount is not positive.
	ErrInvalidAmount = errors.New("price and amount must be positive")
)

// Action is a trade direction.
type Action string

const (
	// Buy converts an amount of currency into shares.
	Buy Action = "buy"
	// Sell converts shares worth an amount of currency back into cash.
	Sell Action = "sell"
)

// ParseAction converts a case-insensitive "buy" or "sell" into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

// Position is one user's holding in one symbol.
type Position struct {
	Symbol      string
	Shares      float64
	AverageCost float64
}

// Apply returns the position that results from trading amount currency units
// of the symbol at price. pos may be nil when the user holds nothing yet. The
// input is never modified.
func Apply(pos *Position, price, amount float64, action Action) (Position, error) {
	if !(price > 0) || !(amount > 0) {
		return Position{}, ErrInvalidAmount
	}
	delta := amount / price

	switch action {
	case Buy:
		if pos == nil {
			return Position{Shares: delta, AverageCost: price}, nil
		}
		next := *pos
		next.AverageCost = (pos.Shares*pos.AverageCost + amount) / (pos.Shares + delta)
		next.Shares = pos.Shares + delta
		return next, nil

	case Sell:
		if pos == nil {
			return Position{}, ErrInsufficientPosition
		}
		if delta > pos.Shares {
			return Position{}, ErrInsufficientShares
		}
		next := *pos
		next.Shares = pos.Shares - delta
		if next.Shares < Epsilon {
			next.Shares = 0
		}
		return next, nil

	default:
		return Position{}, ErrInvalidAction
	}
}
