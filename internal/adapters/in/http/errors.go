package http

import (
	"errors"
	"net/http"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP responses.
// Authorization failures map to 403, missing objects to 404, every rule
// violation the caller can correct to 400, and anything unexpected to 500
// with a generic message.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAccessDenied):
		return respondWith(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondWith(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrInsufficientStock):
		return respondWith(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondWith(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return respondWith(ctx, http.StatusBadRequest, message)
}

func respondWith(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
