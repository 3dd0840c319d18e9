package errors

import (
	"errors"
	"net/http"

	errbuilder "github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorCategory classifies a failure for handler-level mapping. The
// analysis engine itself never produces errors; everything here belongs to
// the collector and the HTTP surface.
type ErrorCategory string

const (
	CategoryValidation  ErrorCategory = "validation"
	CategoryNotFound    ErrorCategory = "not_found"
	CategoryRateLimit   ErrorCategory = "rate_limit"
	CategoryExternalAPI ErrorCategory = "external_api"
	CategoryInternal    ErrorCategory = "internal"
)

// AppError wraps an errbuilder error with the HTTP status it maps to.
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory `json:"category"`
	HTTPStatus int           `json:"http_status"`
}

func (e *AppError) Error() string {
	return e.ErrBuilder.Msg
}

func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

func wrap(builder *errbuilder.ErrBuilder, cause error, category ErrorCategory, status int) *AppError {
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: status,
	}
}

// NewValidationError reports malformed caller input, such as an invalid
// username.
func NewValidationError(msg string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
	return wrap(builder, nil, CategoryValidation, http.StatusBadRequest)
}

// NewNotFoundError reports an identifier that GitHub does not know.
func NewNotFoundError(msg string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
	return wrap(builder, nil, CategoryNotFound, http.StatusNotFound)
}

// NewRateLimitError reports an exhausted upstream API quota.
func NewRateLimitError(msg string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeResourceExhausted).
		WithMsg(msg)
	return wrap(builder, cause, CategoryRateLimit, http.StatusTooManyRequests)
}

// NewExternalAPIError reports any other upstream failure.
func NewExternalAPIError(msg string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(msg)
	return wrap(builder, cause, CategoryExternalAPI, http.StatusBadGateway)
}

// NewInternalError reports a failure inside this service.
func NewInternalError(msg string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg)
	return wrap(builder, cause, CategoryInternal, http.StatusInternalServerError)
}

// ToAppError normalizes any error into an AppError, defaulting to an
// internal error for unknown types.
func ToAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err.Error(), err)
}
