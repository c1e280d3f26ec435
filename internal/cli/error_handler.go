package cli

import (
	stderrors "errors"
	"fmt"

	"day-planner/internal/config"
	"day-planner/internal/errors"
	"day-planner/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", eh.message(err))
}

// message picks the most specific user-facing text for err. Field-level
// validation detail wins over the wrapping AppError message.
func (eh *ErrorHandler) message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}

	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return configErr.Error()
	}

	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}

	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsCorruptDataError checks if stored tasks could not be decoded
func (eh *ErrorHandler) IsCorruptDataError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeCorruptData)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
