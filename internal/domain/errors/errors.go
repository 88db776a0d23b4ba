package errors

import (
	"ctf/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // Human readable message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
// errors.Is against the predefined value keeps working on the result.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human readable message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		"USER_ALREADY_EXISTS",
		"user already exists",
		"",
	)

	// Question-related errors
	ErrQuestionNotFound = NewBaseError(
		"QUESTION_NOT_FOUND",
		"question not found",
		"",
	)

	ErrQuestionAlreadyExists = NewBaseError(
		"QUESTION_ALREADY_EXISTS",
		"question already exists",
		"",
	)

	// Progress-related errors
	ErrQuestionAlreadySolved = NewBaseError(
		"QUESTION_ALREADY_SOLVED",
		"question already solved by this user",
		"",
	)

	ErrHintAlreadyUnlocked = NewBaseError(
		"HINT_ALREADY_UNLOCKED",
		"hint already unlocked by this user",
		"",
	)

	ErrProgressReferenceInvalid = NewBaseError(
		"PROGRESS_REFERENCE_INVALID",
		"user or question does not exist",
		"",
	)

	// Play-related errors
	ErrIncorrectFlag = NewBaseError(
		"INCORRECT_FLAG",
		"flag does not match",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		"INSUFFICIENT_POINTS",
		"not enough points to unlock hint",
		"",
	)

	ErrSecretHashFailed = NewBaseError(
		"SECRET_HASH_FAILED",
		"failed to hash secret",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the human readable message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
