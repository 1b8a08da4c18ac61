// Package response writes the JSON envelopes of the agent API.
package response

import (
	"net/http"

	deliverycontext "sentinel/internal/delivery/context"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"

	"github.com/labstack/echo/v4"
)

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are not exposed for 5xx or auth failures
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// AppError writes err when it carries an AppError and returns any other
// error unchanged for the central error handler.
func AppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return c.JSON(appErr.HTTPCode(), domainerrors.ErrorResponse{
		Error: domainerrors.NewErrorInfo(appErr),
		Meta:  meta(c),
	})
}
