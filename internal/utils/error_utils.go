package utils

import (
	"fmt"

	"premier-properties/internal/errors"
	"premier-properties/pkg/logger"
)

// LogAndMapError logs technical details and returns a user-friendly AppError.
func LogAndMapError(err error, operation string, params ...interface{}) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	details := ""
	for i := 0; i+1 < len(params); i += 2 {
		details += fmt.Sprintf(", %v=%v", params[i], params[i+1])
	}
	logger.GlobalLogger.Errorf("Operation failed: operation=%s, code=%s%s, error=%s",
		operation, appErr.Code, details, appErr.TechnicalMessage)

	return appErr
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
