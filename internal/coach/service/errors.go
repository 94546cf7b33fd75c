package service

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistenceFailure wraps every storage error. The operation it came
	// from did not take effect.
	ErrPersistenceFailure = errors.New("persistence failure")
	// ErrTextGenerationUnavailable marks a text generation call that was
	// replaced with a fallback text.
	ErrTextGenerationUnavailable = errors.New("text generation unavailable")
	// ErrInvalidRequest is returned when a request fails validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAssetNotFound is returned for symbols outside the catalog.
	ErrAssetNotFound = errors.New("asset not found")
)

const (
	FallbackAdvice      = "Your trade went through. Keep your portfolio diversified and think long term, small steady steps add up."
	FallbackConsolation = "That trade didn't go through this time. Check your holdings and try a smaller amount."
	OfflineSummary      = "AI Coach is currently offline. Your expenses are saved, check back soon for your snapshot."
	OfflineCourse       = "AI Course Generator is offline. Your simulation was saved, try again later for your micro-course."
	WelcomeSummary      = "Welcome! Let's start tracking expenses! Log your first item to get your first snapshot."
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrPersistenceFailure, op, err)
}

func invalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
