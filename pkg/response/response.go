package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SuccessResponse is the envelope for every successful reply.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed reply. Errors carries
// collection-style validation output, ErrorDetails a single field-level detail.
type ErrorResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Errors       interface{} `json:"errors,omitempty"`
	ErrorDetails interface{} `json:"errorDetails,omitempty"`
}

func Success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c echo.Context, code int, message string, errs interface{}) error {
	return c.JSON(code, ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// ErrorDetails writes the envelope variant used by the auth gate and
// single-field validation failures.
func ErrorDetails(c echo.Context, code int, message string, details interface{}) error {
	return c.JSON(code, ErrorResponse{
		Success:      false,
		Message:      message,
		ErrorDetails: details,
	})
}

// FieldError is the errorDetails payload for a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type APIError struct {
	Code    int
	Message string
	Details interface{}

	// cause is the underlying failure, kept out of the JSON envelope.
	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func NewError(code int, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// InternalServerError logs an unexpected failure and wraps it so the client
// only ever sees a generic 500. The cause stays reachable through Unwrap for
// callers that log with more context.
func InternalServerError(err error) error {
	log.Error().Err(err).Msg("Unexpected internal error")
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: "internal_server_error",
		cause:   err,
	}
}

// CustomErrorHandler translates errors that escape the handlers, including
// echo's own 404 for unmatched routes, into the standard envelope.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		Error(c, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		Error(c, echoErr.Code, msg, nil)
		return
	}

	c.Logger().Error(err)
	Error(c, http.StatusInternalServerError, "internal_server_error", nil)
}
