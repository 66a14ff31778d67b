package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kioskhub/internal/pkg/errs"
)

// maintenanceMessage is the fixed body every gated endpoint returns while
// the backend is in maintenance mode. Kiosk clients match on it verbatim.
const maintenanceMessage = "Service temporarily unavailable due to maintenance. Database is disconnected."

// ErrorEnvelope is the uniform error response shape.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the message and the mirrored status code.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func newErrorEnvelope(status int, message string) ErrorEnvelope {
	return ErrorEnvelope{Error: ErrorBody{Message: message, Status: status}}
}

// NewErrorHandler builds the central echo error handler mapping domain
// errors onto the error taxonomy. Unrecognized errors become opaque 500s;
// their details go to the log only.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, newErrorEnvelope(status, message))
	}
}

func classify(err error) (int, string) {
	if isDisconnected(err) {
		return http.StatusServiceUnavailable, maintenanceMessage
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpMessage(httpErr)
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectUnavailable):
		return http.StatusGone, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// isDisconnected matches both the pool's own sentinel and the driver error
// that in-flight queries fail with when the pool closes under them.
func isDisconnected(err error) bool {
	if errors.Is(err, errs.ErrDatabaseDisconnected) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}
