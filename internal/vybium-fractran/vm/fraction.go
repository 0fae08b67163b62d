// Package vm provides the Fractran execution engine
package vm

import (
	"fmt"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
)

// Fraction is a single program line with a nonzero numerator and denominator.
type Fraction[T core.Nat[T]] struct {
	num T
	den T
}

// StepResult is the outcome of applying a fraction to a state. Changed is
// set when the product was integral and Value holds the new state; otherwise
// Value is the untouched input. A fraction equal to 1 still reports Changed.
type StepResult[T core.Nat[T]] struct {
	Value   T
	Changed bool
}

// NewFraction creates a fraction num/den. It panics if either side is zero.
func NewFraction[T core.Nat[T]](num, den T) Fraction[T] {
	if num.IsZero() || den.IsZero() {
		panic("cannot have fraction with zero on either side")
	}
	return Fraction[T]{num: num, den: den}
}

// Numerator returns a copy of the numerator
func (f Fraction[T]) Numerator() T { return f.num.Clone() }

// Denominator returns a copy of the denominator
func (f Fraction[T]) Denominator() T { return f.den.Clone() }

// Step multiplies input by the fraction if the result stays integral.
func (f Fraction[T]) Step(input T) StepResult[T] {
	product := input.Mul(f.num)
	if f.den.Divides(product) {
		return StepResult[T]{Value: product.Div(f.den), Changed: true}
	}
	return StepResult[T]{Value: input, Changed: false}
}

// Words encodes the fraction as length-prefixed numerator and denominator
// words.
func (f Fraction[T]) Words() []uint64 {
	num, den := f.num.Words(), f.den.Words()
	words := make([]uint64, 0, len(num)+len(den)+2)
	words = append(words, uint64(len(num)))
	words = append(words, num...)
	words = append(words, uint64(len(den)))
	words = append(words, den...)
	return words
}

// String renders the fraction as "num / den"
func (f Fraction[T]) String() string {
	return fmt.Sprintf("%s / %s", f.num, f.den)
}
