package http

import (
	"net/http"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CoachHandler handles HTTP requests for AI coaching and the investment simulator.
type CoachHandler struct {
	coachService     service.CoachService
	simulatorService service.SimulatorService
	logger           *logger.Logger
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService, simulatorService service.SimulatorService, logger *logger.Logger) *CoachHandler {
	return &CoachHandler{coachService: coachService, simulatorService: simulatorService, logger: logger}
}

// RegisterRoutes registers the coach and simulator routes to the Echo group.
func (h *CoachHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/coach/summary", h.Summary)
	g.POST("/simulator/runs", h.RunSimulation)
}

// Summary godoc
// @Summary Get the weekly financial snapshot
// @Tags coach
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.CoachSummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /coach/summary [get]
func (h *CoachHandler) Summary(c echo.Context) error {
	resp, err := h.coachService.Summary(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get coach summary", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RunSimulation godoc
// @Summary Run an investment simulation
// @Description Projects compound growth and generates a micro-course about it
// @Tags simulator
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Param   simulation body dto.SimulatorRequest true "Simulation parameters"
// @Success 201 {object} dto.SimulatorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /simulator/runs [post]
func (h *CoachHandler) RunSimulation(c echo.Context) error {
	var req dto.SimulatorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	resp, err := h.simulatorService.Run(c.Request().Context(), userID(c), &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to run simulation", err)
	}
	return c.JSON(http.StatusCreated, resp)
}
