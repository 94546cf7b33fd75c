package http

import (
	"net/http"

	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// LessonHandler handles HTTP requests for lesson progress.
type LessonHandler struct {
	lessonService service.LessonService
	logger        *logger.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService service.LessonService, logger *logger.Logger) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, logger: logger}
}

// RegisterRoutes registers the lesson routes to the Echo group.
func (h *LessonHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetStatus)
	g.POST("/advance", h.Advance)
}

// GetStatus godoc
// @Summary Get lesson progress
// @Tags lessons
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.LessonStatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lessons [get]
func (h *LessonHandler) GetStatus(c echo.Context) error {
	status, err := h.lessonService.GetStatus(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get lesson status", err)
	}
	return c.JSON(http.StatusOK, status)
}

// Advance godoc
// @Summary Unlock the next lesson
// @Description Succeeds only when the next lesson's assignment is complete
// @Tags lessons
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lessons/advance [post]
func (h *LessonHandler) Advance(c echo.Context) error {
	resp, err := h.lessonService.Advance(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to advance lesson", err)
	}
	return c.JSON(http.StatusOK, resp)
}
