package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s: %s", e.UserMessage, e.TechnicalMessage)
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeFetchFailed       = "FETCH_FAILED"
	ErrCodeSubmitFailed      = "SUBMIT_FAILED"
	ErrCodeInvalidParameters = "INVALID_PARAMETERS"
	ErrCodePropertyNotInView = "PROPERTY_NOT_IN_VIEW"
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// NewFetchError reports a failed listing load. Transport failures, non-2xx
// responses and undecodable bodies all collapse into this one kind.
func NewFetchError(technicalMessage string, originalErr error) *AppError {
	return NewAppError(technicalMessage, MsgLoadFailed, ErrCodeFetchFailed, http.StatusBadGateway, originalErr)
}

// NewSubmitError reports a failed contact inquiry submission.
func NewSubmitError(technicalMessage string, originalErr error) *AppError {
	return NewAppError(technicalMessage, MsgSubmitFailed, ErrCodeSubmitFailed, http.StatusBadGateway, originalErr)
}

// NewInvalidParametersError reports malformed user input.
func NewInvalidParametersError(technicalMessage string, originalErr error) *AppError {
	return NewAppError(technicalMessage, MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, originalErr)
}

// NewInvalidStateError reports an action that is not allowed in the current UI state.
func NewInvalidStateError(technicalMessage string) *AppError {
	return NewAppError(technicalMessage, MsgInvalidState, ErrCodeInvalidState, http.StatusConflict, nil)
}

// NewPropertyNotInViewError reports a selection of a listing the visitor cannot see.
func NewPropertyNotInViewError(id int64) *AppError {
	return NewAppError(fmt.Sprintf("property %d is not in the current result set", id),
		MsgPropertyNotInView, ErrCodePropertyNotInView, http.StatusNotFound, nil)
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// NewRateLimitedError reports a client that exceeded its request budget.
func NewRateLimitedError(clientIP string) *AppError {
	return NewAppError(fmt.Sprintf("rate limit exceeded for %s", clientIP),
		MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, nil)
}
