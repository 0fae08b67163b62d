package vm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
)

var (
	// ErrEmptyProgram is the panic value when a program has no fractions.
	ErrEmptyProgram = errors.New("cannot run empty program")

	// ErrStepLimit is returned by RunWithLimit when the step budget runs out
	// before the program halts.
	ErrStepLimit = errors.New("step limit reached before halting")
)

// Program is an ordered, nonempty list of fractions. Order sets scan
// priority. A Program is immutable once built.
type Program[T core.Nat[T]] struct {
	fracs []Fraction[T]
}

// NewProgram builds a program from fracs. It panics with ErrEmptyProgram if
// fracs is empty.
func NewProgram[T core.Nat[T]](fracs []Fraction[T]) *Program[T] {
	if len(fracs) == 0 {
		panic(ErrEmptyProgram)
	}
	return &Program[T]{fracs: append([]Fraction[T](nil), fracs...)}
}

// Len returns the number of fractions
func (p *Program[T]) Len() int {
	return len(p.fracs)
}

// Fractions returns a copy of the fraction list
func (p *Program[T]) Fractions() []Fraction[T] {
	return append([]Fraction[T](nil), p.fracs...)
}

// Words encodes the whole program for hashing
func (p *Program[T]) Words() []uint64 {
	words := []uint64{uint64(len(p.fracs))}
	for _, f := range p.fracs {
		words = append(words, f.Words()...)
	}
	return words
}

// String renders the fractions separated by commas
func (p *Program[T]) String() string {
	parts := make([]string, len(p.fracs))
	for i, f := range p.fracs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// Exec returns an evaluator that lazily runs the program on input.
func (p *Program[T]) Exec(input T) *Evaluator[T] {
	return NewEvaluator(p.fracs, input)
}

// RunToCompletion runs the program until it halts and returns the final
// state, or input itself if no fraction ever applies. It never returns for a
// program that does not halt on input.
func (p *Program[T]) RunToCompletion(input T) T {
	last := input
	for state := range p.Exec(input).All() {
		last = state
	}
	return last
}

// RunWithLimit runs the program for at most maxSteps steps (0 means no
// limit), checking ctx between steps. It returns the last state and the number
// of steps taken; ErrStepLimit means the budget ran out first.
func (p *Program[T]) RunWithLimit(ctx context.Context, input T, maxSteps uint64) (T, uint64, error) {
	ev := p.Exec(input)
	for maxSteps == 0 || ev.Steps() < maxSteps {
		if err := ctx.Err(); err != nil {
			return ev.State(), ev.Steps(), fmt.Errorf("run cancelled after %d steps: %w", ev.Steps(), err)
		}
		if _, ok := ev.Next(); !ok {
			return ev.State(), ev.Steps(), nil
		}
	}
	return ev.State(), ev.Steps(), fmt.Errorf("%w: %d steps", ErrStepLimit, maxSteps)
}
