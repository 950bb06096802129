// Package error defines domain-specific errors for the FinanzasApp application.
package error

import "errors"

// Settlement domain errors. All are local and recoverable: the core returns
// to its prior consistent state and nothing is partially committed.
var (
	// ErrInvalidSettlementAmount is returned when the settlement amount is
	// zero or negative.
	ErrInvalidSettlementAmount = errors.New("settlement amount must be greater than zero")

	// ErrInsufficientFunds is returned when an outflow exceeds the source
	// account balance. Hard business-rule rejection, not a warning.
	ErrInsufficientFunds = errors.New("insufficient funds in account")

	// ErrOverpayment is returned when the settlement amount exceeds the
	// obligation's remaining pending balance beyond the accepted tolerance.
	ErrOverpayment = errors.New("settlement amount exceeds pending balance")

	// ErrPeriodAlreadySettled is returned when the (month, period) pair has
	// already been settled for the obligation.
	ErrPeriodAlreadySettled = errors.New("period already settled")

	// ErrMissingSettlementAccount is returned when no account reference is given.
	ErrMissingSettlementAccount = errors.New("missing account reference")
)

// SettlementErrorCode defines error codes for settlement errors.
// Format: STL-XXYYYY where XX is category and YYYY is specific error.
type SettlementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSettlementAmount  SettlementErrorCode = "STL-010001"
	ErrCodeMissingSettlementAccount SettlementErrorCode = "STL-010002"
	ErrCodePeriodAlreadySettled     SettlementErrorCode = "STL-010003"

	// Business-rule rejections (02XXXX)
	ErrCodeInsufficientFunds SettlementErrorCode = "STL-020001"
	ErrCodeOverpayment       SettlementErrorCode = "STL-020002"
)

// SettlementError represents a settlement error with code and message.
type SettlementError struct {
	Code    SettlementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettlementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// NewSettlementError creates a new SettlementError with the given code and message.
func NewSettlementError(code SettlementErrorCode, message string, err error) *SettlementError {
	return &SettlementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
