package http

import (
	"errors"
	"net/http"

	"frugal-friend/internal/coach/service"
	"frugal-friend/internal/ledger"
	"frugal-friend/internal/lesson"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, ledger.ErrInvalidAction),
		errors.Is(err, ledger.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientPosition),
		errors.Is(err, ledger.ErrInsufficientShares),
		errors.Is(err, lesson.ErrAssignmentIncomplete):
		return http.StatusConflict
	case errors.Is(err, service.ErrAssetNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal errors are logged and
// reported without details.
func respondError(c echo.Context, log *logger.Logger, msg string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(c.Request().Context(), msg, logger.ErrorField(err))
		return c.JSON(status, echo.Map{"error": msg})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
