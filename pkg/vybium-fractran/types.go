package vybiumfractran

import (
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/loader"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/utils"
)

// Source is a program description: a name, its fractions and optional
// defaults for input and limits
type Source = loader.Source

// Representation selects how the machine stores its state
type Representation string

const (
	// Native stores the state as a 64-bit unsigned integer
	Native Representation = utils.ReprNative

	// Basis stores the state as prime exponents over the register bank
	Basis Representation = utils.ReprBasis
)

// Config represents configuration for a Fractran machine
type Config struct {
	// Register bank size (number of primes usable as factors)
	MaxRegs uint16

	// Step budget per run; 0 means run until the program halts
	MaxSteps uint64

	// State representation
	Representation Representation

	// Digest hash: "tip5", "sha3" or "sha256"
	HashFunction string

	// Record a Merkle commitment of every emitted state (needs MaxSteps)
	RecordTrace bool
}

// RunResult describes a finished run
type RunResult struct {
	// Final state as a decimal integer
	Output string

	// Final state in the machine's own notation (factorization for Basis)
	State string

	// Number of states emitted
	Steps uint64

	// Whether the program halted, as opposed to hitting the step budget
	Halted bool

	// Hex-encoded program digest
	ProgramDigest string

	// Hex-encoded running hash over every emitted state
	TraceFingerprint string

	// Hex-encoded Merkle root of the trace, when RecordTrace is set
	TraceCommitment string
}

// Comparison reports a lock-step run of both representations
type Comparison struct {
	// Number of states compared
	Steps uint64

	// Whether the two sequences matched
	Equal bool

	// First step (1-based) where the sequences differ, 0 if none
	DivergedAt uint64

	// Values at the divergence point, or final values
	NativeOutput string
	BasisOutput  string
}

// TraceFunc receives each emitted state; returning an error stops the run
type TraceFunc func(step uint64, value string, state string) error

// toInternal converts the public configuration
func (c *Config) toInternal() *utils.Config {
	return &utils.Config{
		MaxRegs:        c.MaxRegs,
		MaxSteps:       c.MaxSteps,
		Representation: string(c.Representation),
		HashFunction:   c.HashFunction,
		RecordTrace:    c.RecordTrace,
	}
}

// DefaultConfig returns a default machine configuration
func DefaultConfig() *Config {
	ic := utils.DefaultConfig()
	return &Config{
		MaxRegs:        ic.MaxRegs,
		MaxSteps:       ic.MaxSteps,
		Representation: Representation(ic.Representation),
		HashFunction:   ic.HashFunction,
		RecordTrace:    ic.RecordTrace,
	}
}
