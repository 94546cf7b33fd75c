package http

import (
	"net/http"
	"strconv"

	"frugal-friend/pkg/common"

	"github.com/labstack/echo/v4"
)

// RequireUser resolves the caller from the X-User-ID header set by the gateway.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseUint(c.Request().Header.Get(common.HeaderUserID), 10, 32)
			if err != nil || id == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing or invalid " + common.HeaderUserID + " header"})
			}
			c.Set(common.ContextKeyUserID, uint(id))
			return next(c)
		}
	}
}

func userID(c echo.Context) uint {
	id, _ := c.Get(common.ContextKeyUserID).(uint)
	return id
}
