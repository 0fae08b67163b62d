package vybiumfractran

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-fractran/internal/vybium-fractran/core"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/loader"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/utils"
	"github.com/vybium/vybium-fractran/internal/vybium-fractran/vm"
)

// Machine is the public interface for running Fractran programs
type Machine interface {
	// Run executes a program on input until it halts or the step budget
	// runs out. On ErrStepLimit the partial result is returned with the error.
	Run(ctx context.Context, source *Source, input uint64) (*RunResult, error)

	// Trace is Run with fn called for every emitted state
	Trace(ctx context.Context, source *Source, input uint64, fn TraceFunc) (*RunResult, error)

	// Compare runs the program on both representations concurrently and
	// reports whether they emit the same values
	Compare(ctx context.Context, source *Source, input uint64) (*Comparison, error)

	// Digest returns the hex-encoded program digest
	Digest(source *Source) (string, error)

	// Config returns a copy of the machine configuration
	Config() *Config
}

// machineImpl is the internal implementation of Machine
type machineImpl struct {
	config *utils.Config
}

// NewMachine creates a new Fractran machine. A nil config uses
// DefaultConfig. The register bank is sized from the first machine created
// in the process; a later machine asking for a different size fails.
func NewMachine(config *Config) (Machine, error) {
	if config == nil {
		config = DefaultConfig()
	}

	ic := config.toInternal()
	if err := ic.Validate(); err != nil {
		return nil, &FractranError{
			Code:    ErrInvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}

	if err := core.InitRegisters(ic.MaxRegs); err != nil {
		return nil, &FractranError{
			Code:    ErrInvalidConfig,
			Message: "failed to initialize register bank",
			Cause:   err,
		}
	}

	return &machineImpl{config: ic}, nil
}

// Config returns a copy of the machine configuration
func (m *machineImpl) Config() *Config {
	return &Config{
		MaxRegs:        m.config.MaxRegs,
		MaxSteps:       m.config.MaxSteps,
		Representation: Representation(m.config.Representation),
		HashFunction:   m.config.HashFunction,
		RecordTrace:    m.config.RecordTrace,
	}
}

// Run executes a program
func (m *machineImpl) Run(ctx context.Context, source *Source, input uint64) (*RunResult, error) {
	return m.Trace(ctx, source, input, nil)
}

// Trace executes a program, reporting every state to fn
func (m *machineImpl) Trace(ctx context.Context, source *Source, input uint64, fn TraceFunc) (*RunResult, error) {
	pairs, err := m.pairs(source)
	if err != nil {
		return nil, err
	}
	budget := m.stepBudget(source)

	switch m.config.Representation {
	case utils.ReprNative:
		prog, start, err := buildNative(pairs, input)
		if err != nil {
			return nil, err
		}
		return execute(ctx, m.config, prog, start, budget, decimalUint, fn)
	default:
		prog, start, err := buildBasis(pairs, input)
		if err != nil {
			return nil, err
		}
		return execute(ctx, m.config, prog, start, budget, decimalBasis, fn)
	}
}

// Digest returns the program digest for the configured representation
func (m *machineImpl) Digest(source *Source) (string, error) {
	pairs, err := m.pairs(source)
	if err != nil {
		return "", err
	}

	var digest []byte
	switch m.config.Representation {
	case utils.ReprNative:
		prog, err := loader.BuildNative(pairs)
		if err != nil {
			return "", buildError(err)
		}
		digest, err = vm.ProgramDigest(prog, m.config.HashFunction)
		if err != nil {
			return "", &FractranError{Code: ErrInvalidConfig, Message: "digest failed", Cause: err}
		}
	default:
		prog, err := loader.BuildBasis(pairs)
		if err != nil {
			return "", buildError(err)
		}
		digest, err = vm.ProgramDigest(prog, m.config.HashFunction)
		if err != nil {
			return "", &FractranError{Code: ErrInvalidConfig, Message: "digest failed", Cause: err}
		}
	}
	return hex.EncodeToString(digest), nil
}

// errDiverged stops a comparison at the first mismatch
var errDiverged = errors.New("representations diverged")

// Compare runs the native and basis representations side by side. Each
// evaluator runs in its own goroutine and owns its state; they share only the
// read-only register bank.
func (m *machineImpl) Compare(ctx context.Context, source *Source, input uint64) (*Comparison, error) {
	pairs, err := m.pairs(source)
	if err != nil {
		return nil, err
	}
	budget := m.stepBudget(source)

	nativeProg, nativeStart, err := buildNative(pairs, input)
	if err != nil {
		return nil, err
	}
	basisProg, basisStart, err := buildBasis(pairs, input)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	nativeCh := make(chan string, 64)
	basisCh := make(chan string, 64)

	// A producer's error is stored before its channel closes, so a failure
	// is never mistaken for a shorter sequence.
	var nativeErr, basisErr error
	g.Go(func() error {
		nativeErr = stream(gctx, nativeProg, nativeStart, budget, decimalUint, nativeCh)
		close(nativeCh)
		return nativeErr
	})
	g.Go(func() error {
		basisErr = stream(gctx, basisProg, basisStart, budget, decimalBasis, basisCh)
		close(basisCh)
		return basisErr
	})

	result := &Comparison{
		NativeOutput: decimalUint(nativeStart),
		BasisOutput:  decimalBasis(basisStart),
	}
	g.Go(func() error {
		for {
			nv, nok := <-nativeCh
			bv, bok := <-basisCh
			if !nok && !bok {
				return nil
			}
			result.Steps++
			if nok {
				result.NativeOutput = nv
			}
			if bok {
				result.BasisOutput = bv
			}
			if nok != bok || nv != bv {
				result.DivergedAt = result.Steps
				return errDiverged
			}
		}
	})

	err = g.Wait()
	switch {
	case ctx.Err() != nil:
		return nil, &FractranError{Code: ErrCancelled, Message: "comparison cancelled", Cause: ctx.Err()}
	case producerFailed(nativeErr):
		return nil, runError(nativeErr)
	case producerFailed(basisErr):
		return nil, runError(basisErr)
	case errors.Is(err, errDiverged):
		result.Equal = false
		return result, nil
	case err != nil:
		return nil, runError(err)
	}

	result.Equal = true
	return result, nil
}

// producerFailed reports an error other than the cancellation caused by a
// divergence
func producerFailed(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// pairs parses the source and checks it against the register bank
func (m *machineImpl) pairs(source *Source) ([]loader.Pair, error) {
	if source == nil {
		return nil, &FractranError{Code: ErrInvalidInput, Message: "source cannot be nil"}
	}
	if source.MaxRegs != 0 && source.MaxRegs != m.config.MaxRegs {
		return nil, &FractranError{
			Code:    ErrInvalidConfig,
			Message: fmt.Sprintf("program %q needs %d registers, machine has %d", source.Name, source.MaxRegs, m.config.MaxRegs),
		}
	}
	pairs, err := source.Pairs()
	if err != nil {
		return nil, buildError(err)
	}
	return pairs, nil
}

// stepBudget prefers the machine's budget, then the source's
func (m *machineImpl) stepBudget(source *Source) uint64 {
	if m.config.MaxSteps != 0 {
		return m.config.MaxSteps
	}
	return source.MaxSteps
}

func buildNative(pairs []loader.Pair, input uint64) (*vm.Program[core.Uint], core.Uint, error) {
	prog, err := loader.BuildNative(pairs)
	if err != nil {
		return nil, 0, buildError(err)
	}
	start, err := core.NewUint(input)
	if err != nil {
		return nil, 0, buildError(fmt.Errorf("input: %w", err))
	}
	return prog, start, nil
}

func buildBasis(pairs []loader.Pair, input uint64) (*vm.Program[core.Basis], core.Basis, error) {
	prog, err := loader.BuildBasis(pairs)
	if err != nil {
		return nil, core.Basis{}, buildError(err)
	}
	start, err := core.NewBasis(input)
	if err != nil {
		return nil, core.Basis{}, buildError(fmt.Errorf("input: %w", err))
	}
	return prog, start, nil
}

// execute drives one evaluator, hashing every state into a transcript and
// optionally recording it for a Merkle commitment
func execute[T core.Nat[T]](
	ctx context.Context,
	config *utils.Config,
	prog *vm.Program[T],
	input T,
	budget uint64,
	decimal func(T) string,
	fn TraceFunc,
) (result *RunResult, err error) {
	defer recoverOverflow(&err)

	digest, err := vm.ProgramDigest(prog, config.HashFunction)
	if err != nil {
		return nil, &FractranError{Code: ErrInvalidConfig, Message: "digest failed", Cause: err}
	}

	channel := utils.NewChannel(config.HashFunction)
	var recorder *vm.TraceRecorder[T]
	if config.RecordTrace {
		recorder = vm.NewTraceRecorder[T]()
	}

	ev := prog.Exec(input)
	for budget == 0 || ev.Steps() < budget {
		if err := ctx.Err(); err != nil {
			return nil, &FractranError{
				Code:    ErrCancelled,
				Message: fmt.Sprintf("run cancelled after %d steps", ev.Steps()),
				Cause:   err,
			}
		}

		state, ok := ev.Next()
		if !ok {
			break
		}

		channel.SendWords(state.Words())
		if recorder != nil {
			recorder.Record(state)
		}
		if fn != nil {
			if err := fn(ev.Steps(), decimal(state), state.String()); err != nil {
				return nil, err
			}
		}
	}

	final := ev.State()
	result = &RunResult{
		Output:           decimal(final),
		State:            final.String(),
		Steps:            ev.Steps(),
		Halted:           ev.Halted(),
		ProgramDigest:    hex.EncodeToString(digest),
		TraceFingerprint: channel.Hex(),
	}

	if recorder != nil {
		root, err := recorder.Commitment()
		if err != nil {
			return nil, &FractranError{Code: ErrUnknown, Message: "trace commitment failed", Cause: err}
		}
		result.TraceCommitment = hex.EncodeToString(root)
	}

	if !result.Halted {
		return result, &FractranError{
			Code:    ErrStepLimit,
			Message: fmt.Sprintf("program did not halt within %d steps", budget),
			Cause:   vm.ErrStepLimit,
		}
	}
	return result, nil
}

// stream sends every emitted value to out until the program halts, the
// budget runs out or ctx is done
func stream[T core.Nat[T]](
	ctx context.Context,
	prog *vm.Program[T],
	input T,
	budget uint64,
	decimal func(T) string,
	out chan<- string,
) (err error) {
	defer recoverOverflow(&err)

	ev := prog.Exec(input)
	for budget == 0 || ev.Steps() < budget {
		state, ok := ev.Next()
		if !ok {
			return nil
		}
		select {
		case out <- decimal(state):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// recoverOverflow turns a native overflow panic into an error. Any other
// panic is a contract violation and propagates.
func recoverOverflow(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && errors.Is(e, core.ErrNativeOverflow) {
		*err = &FractranError{Code: ErrNativeOverflow, Message: "state exceeds 64 bits", Cause: e}
		return
	}
	panic(r)
}

func decimalUint(u core.Uint) string { return u.String() }

func decimalBasis(b core.Basis) string { return b.Big().String() }

// buildError maps construction failures onto error codes
func buildError(err error) error {
	code := ErrInvalidInput
	switch {
	case errors.Is(err, core.ErrZeroValue):
		code = ErrZeroValue
	case errors.Is(err, core.ErrRegisterOverflow):
		code = ErrRegisterOverflow
	case errors.Is(err, vm.ErrEmptyProgram):
		code = ErrEmptyProgram
	}
	return &FractranError{Code: code, Message: "failed to build program", Cause: err}
}

// runError wraps an error from a comparison goroutine
func runError(err error) error {
	var fe *FractranError
	if errors.As(err, &fe) {
		return fe
	}
	return &FractranError{Code: ErrUnknown, Message: "comparison failed", Cause: err}
}
