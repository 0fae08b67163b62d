// Package core defines the numeric representations a Fractran machine runs on.
//
// A Nat is any representation of a positive integer that can multiply,
// divide exactly and test divisibility. Two representations are provided:
// Uint, a bounded native integer, and Basis, which stores the vector of
// exponents of the value's prime factorization over the register bank.
package core

import "fmt"

// Nat is the capability set shared by every state representation. T is the
// implementing type itself, so Mul and Div stay closed over T.
type Nat[T any] interface {
	fmt.Stringer

	// Uint64 converts to a native integer.
	Uint64() uint64
	// IsZero reports whether the value is zero.
	IsZero() bool
	// Mul returns the product of the receiver and other.
	Mul(other T) T
	// Div returns the exact quotient. It panics when other does not divide
	// the receiver; callers check Divides first.
	Div(other T) T
	// Divides reports whether the receiver divides other.
	Divides(other T) bool
	// Clone returns an independent copy.
	Clone() T
	// Equal reports value equality.
	Equal(other T) bool
	// Words exposes the raw representation for inspection and hashing.
	Words() []uint64
}

// Constructor builds a T from a native integer.
type Constructor[T any] func(value uint64) (T, error)

// Divides reports whether a divides b.
func Divides[T Nat[T]](a, b T) bool {
	return a.Divides(b)
}

var (
	_ Nat[Uint]  = Uint(0)
	_ Nat[Basis] = Basis{}
)
