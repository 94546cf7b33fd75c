package http

import (
	"net/http"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ActivityHandler handles HTTP requests for expenses, incomes and the streak.
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *logger.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService service.ActivityService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, logger: logger}
}

// RegisterRoutes registers the activity routes to the Echo group.
func (h *ActivityHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/expenses", h.LogExpense)
	g.GET("/expenses", h.ListExpenses)
	g.POST("/incomes", h.LogIncome)
	g.GET("/streak", h.GetStreak)
}

// LogExpense godoc
// @Summary Log an expense
// @Tags activity
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense to log"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (h *ActivityHandler) LogExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	resp, err := h.activityService.LogExpense(c.Request().Context(), userID(c), &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to log expense", err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListExpenses godoc
// @Summary List expenses
// @Tags activity
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (h *ActivityHandler) ListExpenses(c echo.Context) error {
	resp, err := h.activityService.ListExpenses(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get expenses", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// LogIncome godoc
// @Summary Log an income
// @Tags activity
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Param   income body dto.CreateIncomeRequest true "Income to log"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /incomes [post]
func (h *ActivityHandler) LogIncome(c echo.Context) error {
	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	resp, err := h.activityService.LogIncome(c.Request().Context(), userID(c), &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to log income", err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetStreak godoc
// @Summary Get the logging streak
// @Tags activity
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.StreakResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /streak [get]
func (h *ActivityHandler) GetStreak(c echo.Context) error {
	resp, err := h.activityService.GetStreak(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get streak", err)
	}
	return c.JSON(http.StatusOK, resp)
}
