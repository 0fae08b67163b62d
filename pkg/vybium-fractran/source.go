package vybiumfractran

import (
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/loader"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/primes"
)

// ParseProgram builds a source from fraction text such as "17/91, 78/85 55".
// Tokens are separated by commas or whitespace and '#' starts a comment.
func ParseProgram(name, text string) (*Source, error) {
	pairs, err := loader.ParseFractions(text)
	if err != nil {
		return nil, buildError(err)
	}
	return loader.FromPairs(name, pairs), nil
}

// LoadProgram reads a program file: YAML for .yaml and .yml, fraction text
// otherwise
func LoadProgram(path string) (*Source, error) {
	src, err := loader.LoadFile(path)
	if err != nil {
		return nil, buildError(err)
	}
	return src, nil
}

// Builtin returns a copy of a built-in program
func Builtin(name string) (*Source, error) {
	src, err := loader.Builtin(name)
	if err != nil {
		return nil, &FractranError{Code: ErrInvalidInput, Message: "no such program", Cause: err}
	}
	return src, nil
}

// BuiltinNames lists the built-in programs
func BuiltinNames() []string {
	return loader.BuiltinNames()
}

// FirstPrimes returns the first n primes
func FirstPrimes(n uint16) []uint64 {
	return primes.FirstNPrimes(n)
}

// RegisterPrimes returns a copy of the register bank's primes
func RegisterPrimes() []uint64 {
	return append([]uint64(nil), core.Primes()...)
}
