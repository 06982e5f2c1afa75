package http

import (
	"errors"
	"net/http"

	"shiporder/internal/core/application/usecases/commands"
	"shiporder/internal/core/domain/model/order"
	"shiporder/internal/core/ports"
	"shiporder/internal/generated/servers"
	"shiporder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error chain to the HTTP status the API documents.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrFieldIsNotEditable),
		errors.Is(err, order.ErrOrderIsNotEditable),
		errors.Is(err, order.ErrOrderIsNotCancellable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToChange):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrRateLookupFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "Internal server error"
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
