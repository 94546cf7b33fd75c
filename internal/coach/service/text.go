package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frugal-friend/internal/coach/repository"
	"frugal-friend/pkg/logger"
	"frugal-friend/pkg/metrics"
)

var errEmptyText = errors.New("empty text")

// textWriter calls the text generator with a bounded timeout and substitutes
// a fallback on any failure.
type textWriter struct {
	generator repository.TextGenerator
	timeout   time.Duration
	logger    *logger.Logger
}

// write returns the generated text, or fallback and false.
func (w *textWriter) write(ctx context.Context, operation, prompt, fallback string) (string, bool) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	text, err := w.generator.GenerateText(ctx, prompt)
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = errEmptyText
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTextGenerationUnavailable, err)
		w.logger.WarnContext(ctx, "Using fallback text", logger.StringField("operation", operation), logger.ErrorField(err))
		metrics.TextGenerationFallbacks.WithLabelValues(operation).Inc()
		return fallback, false
	}
	return text, true
}
