package http

import (
	"errors"
	"fmt"
	"net/http"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/generated/servers"
	"shipments/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps the error families onto HTTP status codes.
func statusCodeFor(err error) int {
	var transition *shipment.TransitionError
	switch {
	case errors.As(err, &transition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrBackend):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrTransport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// messageFor prefers the backend's or the validator's own wording. Local
// validation errors are shown as they are since they name the bad field.
func messageFor(err error, fallback string) string {
	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return errs.UserMessage(err, err.Error())
	}
	return errs.UserMessage(err, fallback)
}

func respondError(ctx echo.Context, err error, fallback string) error {
	return respondMessage(ctx, statusCodeFor(err), messageFor(err, fallback), err)
}

func respondMessage(ctx echo.Context, code int, message string, err error) error {
	response := servers.ErrorResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		detail := err.Error()
		response.Error = &detail
	}
	return ctx.JSON(code, response)
}

// ErrorHandler renders errors that escaped a handler (binding failures,
// unknown routes, recovered panics) in the same envelope as handled ones.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = respondMessage(ctx, code, message, err)
	}
	if writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
