package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for errors that escape the
// per-route mapping: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes as a fallback
//     (handlers normally map them inline with route-specific envelopes).
//   - Logs unexpected errors and surfaces the underlying message in the
//     {"error": ...} envelope, matching the frontend's toast contract.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "Admin not found"
	case errors.Is(err, domain.ErrMachineNotFound):
		return http.StatusNotFound, "Machine not found for this user"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, domain.ErrAdminExists):
		return http.StatusConflict, "Admin already exists"
	case errors.Is(err, domain.ErrMachineExists):
		return http.StatusConflict, "Machine already exists"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
