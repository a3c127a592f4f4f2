package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse translates application errors into HTTP status codes.
// Validation, scheduling and lifecycle violations are client errors; missing
// objects are 404; everything else stays a 500 without leaking details.
func errorResponse(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if isBadRequest(err) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// isBadRequest reports whether the error is caused by the request contents.
func isBadRequest(err error) bool {
	var (
		required *errs.ValueIsRequiredError
		invalid  *errs.ValueIsInvalidError
		ooRange  *errs.ValueIsOutOfRangeError
		schedule *errs.ScheduleIsInvalidError
		quota    *errs.QuotaExceededError
	)

	switch {
	case errors.As(err, &required),
		errors.As(err, &invalid),
		errors.As(err, &ooRange),
		errors.As(err, &schedule),
		errors.As(err, &quota):
		return true
	}

	return errors.Is(err, delivery.ErrDeliveryAlreadyStarted) ||
		errors.Is(err, delivery.ErrDeliveryAlreadyCompleted) ||
		errors.Is(err, delivery.ErrDeliveryAlreadyCanceled) ||
		errors.Is(err, delivery.ErrDeliveryNotStarted) ||
		errors.Is(err, delivery.ErrEndBeforeStart)
}

// badRequest returns a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
