// Package response writes JSON bodies for the HTTP delivery.
// Successful responses are bare resources; errors share one envelope.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "fitlog/internal/delivery/context"
	domainerrors "fitlog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	headerWWWAuthenticate = "WWW-Authenticate"
	bearerChallenge       = "Bearer"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent returns an empty 204 response
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(headerWWWAuthenticate, bearerChallenge)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// FromAppError writes a predefined domain error
func FromAppError(c echo.Context, appErr domainerrors.AppError, details any) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// ValidationFailed returns a 400 error listing the offending fields
func ValidationFailed(c echo.Context, details any) error {
	return FromAppError(c, domainerrors.ErrValidationFailed, details)
}

// Unauthenticated returns the 401 used for every bearer token failure
func Unauthenticated(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrUnauthenticated, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrInternalError, nil)
}

// HandleAppError converts usecase errors to HTTP responses.
// 5xx causes are logged with the request-scoped logger and never returned to the client.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).ErrorContext(ctx, "Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	return FromAppError(c, appErr, nil)
}
