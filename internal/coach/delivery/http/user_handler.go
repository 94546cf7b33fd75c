package http

import (
	"net/http"

	"frugal-friend/internal/coach/dto"
	"frugal-friend/internal/coach/service"
	"frugal-friend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for onboarding and the profile.
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// RegisterRoutes registers the user routes to the Echo group.
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/onboarding", h.Onboard)
	g.GET("/users/me", h.Profile)
}

// Onboard godoc
// @Summary Complete onboarding
// @Description Sets the budget profile and replaces the savings goals
// @Tags users
// @Accept  json
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Param   onboarding body dto.OnboardingRequest true "Onboarding answers"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /onboarding [post]
func (h *UserHandler) Onboard(c echo.Context) error {
	var req dto.OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	resp, err := h.userService.Onboard(c.Request().Context(), userID(c), &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to save onboarding", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Profile godoc
// @Summary Get the profile
// @Tags users
// @Produce  json
// @Param   X-User-ID header string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	resp, err := h.userService.Profile(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, h.logger, "Failed to get profile", err)
	}
	return c.JSON(http.StatusOK, resp)
}
