package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kioskhub/internal/core/application/maintenance"
)

// MaintenanceGate rejects every request with the fixed 503 body while
// maintenance mode is active. The maintenance endpoints themselves stay
// reachable, otherwise the mode could never be turned off remotely.
func MaintenanceGate(sw *maintenance.Switch) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == "/maintenance" || strings.HasPrefix(path, "/maintenance/") {
				return next(c)
			}
			if sw.Enabled() {
				return c.JSON(http.StatusServiceUnavailable,
					newErrorEnvelope(http.StatusServiceUnavailable, maintenanceMessage))
			}
			return next(c)
		}
	}
}

// RequestID assigns a UUID to every request missing one, echoed back in the
// X-Request-Id header.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}
