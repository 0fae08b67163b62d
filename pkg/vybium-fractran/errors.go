package vybiumfractran

import (
	"errors"
	"fmt"
)

// ErrorCode represents a Vybium Fractran error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents a malformed program or input value
	ErrInvalidInput

	// ErrZeroValue represents an attempt to use zero as a value
	ErrZeroValue

	// ErrRegisterOverflow represents a value needing a prime outside the register bank
	ErrRegisterOverflow

	// ErrEmptyProgram represents a program without fractions
	ErrEmptyProgram

	// ErrStepLimit represents a run that exhausted its step budget before halting
	ErrStepLimit

	// ErrNativeOverflow represents a native state that no longer fits in 64 bits
	ErrNativeOverflow

	// ErrCancelled represents a run stopped by its context
	ErrCancelled
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:          "unknown",
	ErrInvalidConfig:    "invalid config",
	ErrInvalidInput:     "invalid input",
	ErrZeroValue:        "zero value",
	ErrRegisterOverflow: "register overflow",
	ErrEmptyProgram:     "empty program",
	ErrStepLimit:        "step limit",
	ErrNativeOverflow:   "native overflow",
	ErrCancelled:        "cancelled",
}

// String returns the code's name
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code %d", int(c))
}

// FractranError represents a Vybium Fractran error
type FractranError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *FractranError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-fractran error [%s]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-fractran error [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *FractranError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *FractranError) Is(target error) bool {
	t, ok := target.(*FractranError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of a *FractranError in err's chain, or ErrUnknown
func CodeOf(err error) ErrorCode {
	var fe *FractranError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ErrUnknown
}
