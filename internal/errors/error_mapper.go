package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case strings.Contains(technicalMessage, "rate limit"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgRateLimited,
			Code:             ErrCodeRateLimited,
			HTTPStatus:       http.StatusTooManyRequests,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "invalid"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
