// Package error defines domain-specific errors for the FinanzasApp application.
package error

import "errors"

// Obligation domain errors.
var (
	// ErrObligationNotFound is returned when an obligation is not found in the system.
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrInvalidObligationType is returned when the obligation type is invalid.
	ErrInvalidObligationType = errors.New("invalid obligation type")

	// ErrInvalidObligationName is returned when the counterparty/label name is missing.
	ErrInvalidObligationName = errors.New("invalid obligation name")

	// ErrInvalidPeriodicity is returned when the periodicity is not supported
	// for the obligation type.
	ErrInvalidPeriodicity = errors.New("invalid periodicity")

	// ErrInvalidNominalDay is returned when the nominal day-of-month is out of range.
	ErrInvalidNominalDay = errors.New("invalid nominal day")

	// ErrInvalidTotalAmount is returned when an installment total is zero or negative.
	ErrInvalidTotalAmount = errors.New("invalid total amount")

	// ErrInvalidFixedAmount is returned when a fixed-value obligation has no
	// positive amount.
	ErrInvalidFixedAmount = errors.New("invalid fixed amount")

	// ErrMissingLumpDate is returned when a lump obligation has no explicit due date.
	ErrMissingLumpDate = errors.New("lump obligation requires a due date")
)

// ObligationErrorCode defines error codes for obligation errors.
// Format: OBL-XXYYYY where XX is category and YYYY is specific error.
type ObligationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeObligationNotFound     ObligationErrorCode = "OBL-010001"
	ErrCodeInvalidObligationType  ObligationErrorCode = "OBL-010002"
	ErrCodeInvalidObligationName  ObligationErrorCode = "OBL-010003"
	ErrCodeInvalidPeriodicity     ObligationErrorCode = "OBL-010004"
	ErrCodeInvalidNominalDay      ObligationErrorCode = "OBL-010005"
	ErrCodeInvalidTotalAmount     ObligationErrorCode = "OBL-010006"
	ErrCodeInvalidFixedAmount     ObligationErrorCode = "OBL-010007"
	ErrCodeMissingLumpDate        ObligationErrorCode = "OBL-010008"
	ErrCodeMissingObligationField ObligationErrorCode = "OBL-010009"
)

// ObligationError represents an obligation error with code and message.
type ObligationError struct {
	Code    ObligationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObligationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObligationError) Unwrap() error {
	return e.Err
}

// NewObligationError creates a new ObligationError with the given code and message.
func NewObligationError(code ObligationErrorCode, message string, err error) *ObligationError {
	return &ObligationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
