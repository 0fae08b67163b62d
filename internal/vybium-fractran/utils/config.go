package utils

import (
	"fmt"
)

// Hash function names accepted by Config.HashFunction
const (
	HashTip5   = "tip5"
	HashSHA3   = "sha3"
	HashSHA256 = "sha256"
)

// Representation names accepted by Config.Representation
const (
	ReprNative = "native"
	ReprBasis  = "basis"
)

// Config represents the configuration of a Fractran machine
type Config struct {
	// Register bank size: the number of primes usable as factors
	MaxRegs uint16

	// Step budget per run; 0 runs until the program halts
	MaxSteps uint64

	// State representation: "native" or "basis"
	Representation string

	// Program digest and transcript hash: "tip5", "sha3" or "sha256"
	HashFunction string

	// Keep every emitted state for a Merkle trace commitment
	RecordTrace bool
}

// DefaultConfig returns the default configuration: 1000 registers, the
// factorization representation and no step limit.
func DefaultConfig() *Config {
	return &Config{
		MaxRegs:        1000,
		MaxSteps:       0,
		Representation: ReprBasis,
		HashFunction:   HashTip5,
		RecordTrace:    false,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxRegs == 0 {
		return fmt.Errorf("register count must be positive")
	}

	if c.Representation != ReprNative && c.Representation != ReprBasis {
		return fmt.Errorf("representation must be '%s' or '%s', got '%s'", ReprNative, ReprBasis, c.Representation)
	}

	if c.HashFunction != HashTip5 && c.HashFunction != HashSHA3 && c.HashFunction != HashSHA256 {
		return fmt.Errorf("hash function must be 'tip5', 'sha3', or 'sha256', got '%s'", c.HashFunction)
	}

	if c.RecordTrace && c.MaxSteps == 0 {
		return fmt.Errorf("trace recording requires a step limit")
	}

	return nil
}

// WithMaxRegs sets the register bank size
func (c *Config) WithMaxRegs(n uint16) *Config {
	c.MaxRegs = n
	return c
}

// WithMaxSteps sets the step budget
func (c *Config) WithMaxSteps(n uint64) *Config {
	c.MaxSteps = n
	return c
}

// WithRepresentation sets the state representation
func (c *Config) WithRepresentation(repr string) *Config {
	c.Representation = repr
	return c
}

// WithHashFunction sets the hash function
func (c *Config) WithHashFunction(hashFunc string) *Config {
	c.HashFunction = hashFunc
	return c
}

// WithRecordTrace enables or disables trace recording
func (c *Config) WithRecordTrace(record bool) *Config {
	c.RecordTrace = record
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
