// Package error defines domain-specific errors for the FinanzasApp application.
package error

import "errors"

// Variable movement domain errors.
var (
	// ErrMovementNotFound is returned when a variable movement is not found.
	ErrMovementNotFound = errors.New("movement not found")

	// ErrInvalidMovementType is returned when the movement type is invalid.
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidMovementAmount is returned when the amount is zero or negative.
	ErrInvalidMovementAmount = errors.New("invalid movement amount")

	// ErrMissingDestinationAccount is returned when a transfer has no
	// destination account.
	ErrMissingDestinationAccount = errors.New("transfer requires a destination account")

	// ErrSameTransferAccounts is returned when a transfer's source and
	// destination are the same account.
	ErrSameTransferAccounts = errors.New("transfer accounts must differ")
)

// MovementErrorCode defines error codes for variable movement errors.
// Format: MOV-XXYYYY where XX is category and YYYY is specific error.
type MovementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMovementNotFound          MovementErrorCode = "MOV-010001"
	ErrCodeInvalidMovementType       MovementErrorCode = "MOV-010002"
	ErrCodeInvalidMovementAmount     MovementErrorCode = "MOV-010003"
	ErrCodeMissingDestinationAccount MovementErrorCode = "MOV-010004"
	ErrCodeSameTransferAccounts      MovementErrorCode = "MOV-010005"
	ErrCodeMissingMovementFields     MovementErrorCode = "MOV-010006"
)

// MovementError represents a variable movement error with code and message.
type MovementError struct {
	Code    MovementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MovementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MovementError) Unwrap() error {
	return e.Err
}

// NewMovementError creates a new MovementError with the given code and message.
func NewMovementError(code MovementErrorCode, message string, err error) *MovementError {
	return &MovementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
