package utils

import (
	"errors"
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/apperror"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success         bool     `json:"success"`
	Error           string   `json:"error"`
	Code            int      `json:"code,omitempty"`
	RetryAfterHours *float64 `json:"retry_after_hours,omitempty"`
}

// GenericInternalError is the only message clients see for downstream failures
const GenericInternalError = "Internal server error"

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// TooManyRequestsResponse sends a 429 response carrying the remaining wait
func TooManyRequestsResponse(c echo.Context, errorMessage string, retryAfterHours float64) error {
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success:         false,
		Error:           errorMessage,
		Code:            http.StatusTooManyRequests,
		RetryAfterHours: &retryAfterHours,
	})
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = GenericInternalError
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrBadRequest),
		errors.Is(err, apperror.ErrInvalidCredential),
		errors.Is(err, apperror.ErrExpired):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the response for a usecase error. Internal failures are
// logged with their cause and answered with a generic message.
func HandleError(c echo.Context, operation string, err error) error {
	status := StatusFor(err)

	var rl *apperror.RateLimitError
	if errors.As(err, &rl) {
		return TooManyRequestsResponse(c, rl.Message, rl.RetryAfterHours())
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			logger.String("operation", operation),
			logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			logger.ErrorField(err),
		)
		return InternalServerErrorResponse(c, "")
	}

	return ErrorResponseHandler(c, status, apperror.Message(err, http.StatusText(status)))
}
