// Package error defines domain-specific errors for the FinanzasApp application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountCategory is returned when the account category is invalid.
	ErrInvalidAccountCategory = errors.New("invalid account category")

	// ErrInvalidAccountName is returned when the account name is missing.
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrNegativeInitialBalance is returned when the opening balance is negative.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountCategory AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountName     AccountErrorCode = "ACC-010003"
	ErrCodeNegativeInitialBalance AccountErrorCode = "ACC-010004"
	ErrCodeMissingAccountFields   AccountErrorCode = "ACC-010005"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
