package core

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroValue is returned when zero is offered as a value. Zero has no
	// prime factorization and cannot appear in a Fractran program.
	ErrZeroValue = errors.New("zero is meaningless in Fractran programs, cannot be stored")

	// ErrRegisterOverflow matches every RegisterOverflowError via errors.Is.
	ErrRegisterOverflow = errors.New("register overflow")

	// ErrNonIntegralDivision is the panic value (wrapped) raised when Div is
	// called without the divisor dividing the dividend.
	ErrNonIntegralDivision = errors.New("non-integral division")

	// ErrNativeOverflow is the panic value (wrapped) raised when a value no
	// longer fits in a native 64-bit integer.
	ErrNativeOverflow = errors.New("native overflow")

	// ErrRegistersInitialized is returned when the register bank is
	// re-initialized with a different size.
	ErrRegistersInitialized = errors.New("register bank already initialized")
)

// RegisterOverflowError reports a value whose factorization needs a prime
// outside the register bank.
type RegisterOverflowError struct {
	Value   uint64 // offending input
	Largest uint64 // largest prime in the bank
}

// Error returns the error message
func (e *RegisterOverflowError) Error() string {
	return fmt.Sprintf("register overflow: input %d has prime factor larger than %d", e.Value, e.Largest)
}

// Is lets errors.Is(err, ErrRegisterOverflow) match
func (e *RegisterOverflowError) Is(target error) bool {
	return target == ErrRegisterOverflow
}
