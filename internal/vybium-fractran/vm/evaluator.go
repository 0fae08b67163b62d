package vm

import (
	"iter"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
)

// Evaluator holds the state of a running program. Each call to Next performs
// one scan of the fraction list. It is single-pass: once halted it stays
// halted, and a fresh Evaluator is needed to run again.
type Evaluator[T core.Nat[T]] struct {
	// Working copy of the program
	fracs []Fraction[T]

	// Current state
	state T

	// Number of states emitted
	steps uint64

	// Set once a full scan leaves the state unchanged
	halted bool
}

// NewEvaluator creates an evaluator over fracs starting from input. It panics
// with ErrEmptyProgram if fracs is empty.
func NewEvaluator[T core.Nat[T]](fracs []Fraction[T], input T) *Evaluator[T] {
	if len(fracs) == 0 {
		panic(ErrEmptyProgram)
	}
	return &Evaluator[T]{
		fracs:  append([]Fraction[T](nil), fracs...),
		state:  input.Clone(),
		steps:  0,
		halted: false,
	}
}

// Next applies the first fraction that keeps the state integral and returns
// the new state. It returns false, and marks the evaluator halted, when no
// fraction applies.
func (e *Evaluator[T]) Next() (T, bool) {
	if e.halted {
		var zero T
		return zero, false
	}

	for _, f := range e.fracs {
		if res := f.Step(e.state); res.Changed {
			e.state = res.Value
			e.steps++
			return e.state.Clone(), true
		}
	}

	e.halted = true
	var zero T
	return zero, false
}

// All returns the remaining states as a sequence. Stopping early leaves the
// evaluator resumable from where iteration ended.
func (e *Evaluator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			state, ok := e.Next()
			if !ok || !yield(state) {
				return
			}
		}
	}
}

// Halted reports whether the program has halted
func (e *Evaluator[T]) Halted() bool {
	return e.halted
}

// Steps returns the number of states emitted so far
func (e *Evaluator[T]) Steps() uint64 {
	return e.steps
}

// State returns a copy of the current state
func (e *Evaluator[T]) State() T {
	return e.state.Clone()
}
