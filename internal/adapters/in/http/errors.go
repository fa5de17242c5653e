package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in the "kind" field of error bodies.
const (
	KindValidation        = "validation"
	KindConflict          = "conflict"
	KindCourierBusy       = "courier_busy"
	KindAlreadyClaimed    = "already_claimed"
	KindNotFound          = "not_found"
	KindForbidden         = "forbidden"
	KindInvalidTransition = "invalid_transition"
	KindUnauthenticated   = "unauthenticated"
	KindTimeout           = "timeout"
	KindHTTP              = "http"
	KindInternal          = "internal"
)

// classify maps an error to its status code and kind.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, KindUnauthenticated
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, KindForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, errs.ErrAlreadyClaimed):
		return http.StatusConflict, KindAlreadyClaimed
	case errors.Is(err, errs.ErrCourierBusy):
		return http.StatusConflict, KindCourierBusy
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, KindConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, KindInvalidTransition
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, KindTimeout
	case errors.As(err, &httpErr):
		return httpErr.Code, KindHTTP
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// ErrorHandler renders every error as servers.Error. Internal failures are
// logged and answered with a generic message.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, kind := classify(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if kind == KindHTTP && errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if kind == KindInternal {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
			message = http.StatusText(http.StatusInternalServerError)
		}

		body := servers.Error{Code: code, Kind: kind, Message: message}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}
