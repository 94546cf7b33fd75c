package http

import (
	"net/http"

	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler handles HTTP requests for the synthetic market.
type MarketHandler struct {
	marketService service.MarketService
	logger        *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService service.MarketService, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketService: marketService, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/assets", h.ListAssets)
	g.GET("/assets/:symbol/history", h.GetHistory)
}

// ListAssets godoc
// @Summary List assets
// @Description Tradeable assets with their current price and day change
// @Tags market
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Router /market/assets [get]
func (h *MarketHandler) ListAssets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketService.ListAssets())
}

// GetHistory godoc
// @Summary Get price history
// @Description The last 10 daily prices of an asset, oldest first
// @Tags market
// @Produce  json
// @Param   symbol path string true "Asset symbol"
// @Success 200 {object} dto.AssetHistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /market/assets/{symbol}/history [get]
func (h *MarketHandler) GetHistory(c echo.Context) error {
	history, err := h.marketService.GetHistory(c.Param("symbol"))
	if err != nil {
		return respondError(c, h.logger, "Failed to get history", err)
	}
	return c.JSON(http.StatusOK, history)
}
