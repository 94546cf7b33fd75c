package http

import (
	"net/http"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TradeHandler handles HTTP requests for paper trades and the portfolio.
type TradeHandler struct {
	tradeService     service.TradeService
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService service.TradeService, portfolioService service.PortfolioService, logger *logger.Logger) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the trade and portfolio routes to the Echo group.
func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trades", h.ExecuteTrade)
	g.GET("/portfolio", h.GetPortfolio)
}

// ExecuteTrade godoc
// @Summary Execute a paper trade
// @Description Buy or sell an amount of currency worth of an asset at its current synthetic price
// @Tags trading
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Param   trade body dto.TradeRequest true "Trade to execute"
// @Success 200 {object} dto.TradeOutcome
// @Failure 400 {object} dto.TradeOutcome
// @Failure 409 {object} dto.TradeOutcome
// @Failure 500 {object} dto.TradeOutcome
// @Router /trades [post]
func (h *TradeHandler) ExecuteTrade(c echo.Context) error {
	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	outcome, err := h.tradeService.ExecuteTrade(c.Request().Context(), userID(c), &req)
	if err != nil {
		return c.JSON(statusFor(err), outcome)
	}
	return c.JSON(http.StatusOK, outcome)
}

// GetPortfolio godoc
// @Summary Get the portfolio
// @Description Holdings with shares left, valued at current prices
// @Tags trading
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio [get]
func (h *TradeHandler) GetPortfolio(c echo.Context) error {
	portfolio, err := h.portfolioService.GetPortfolio(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get portfolio", err)
	}
	return c.JSON(http.StatusOK, portfolio)
}
