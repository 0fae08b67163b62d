package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	vybiumfractran "github.com/vybium/vybium-fractran/pkg/vybium-fractran"
)

// runCmd runs a program to completion or until its step budget
var runCmd = &cobra.Command{
	Use:   "run [program-file]",
	Short: "Run a program and print its final state",
	Example: `  vybium-fractran run --builtin multiply --input 72
  vybium-fractran run --program "1/2" --input 1024 --repr native
  vybium-fractran run primegame.yaml --max-steps 100000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

// traceCmd prints every state of a run
var traceCmd = &cobra.Command{
	Use:   "trace [program-file]",
	Short: "Print every state a program passes through",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTrace,
}

// compareCmd runs both representations side by side
var compareCmd = &cobra.Command{
	Use:   "compare [program-file]",
	Short: "Check that the native and basis representations agree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompare,
}

// digestCmd prints a program digest
var digestCmd = &cobra.Command{
	Use:   "digest [program-file]",
	Short: "Print the digest of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDigest,
}

// primesCmd prints the first N primes
var primesCmd = &cobra.Command{
	Use:   "primes N",
	Short: "Print the first N primes",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrimes,
}

// builtinsCmd lists the built-in programs
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the built-in programs",
	Args:  cobra.NoArgs,
	RunE:  runBuiltins,
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args)
	if err != nil {
		return err
	}
	input, err := resolveInput(src)
	if err != nil {
		return err
	}
	m, err := newMachine(maxSteps, recordTrace)
	if err != nil {
		return err
	}

	logger.Info("Running program",
		zap.String("program", src.Name),
		zap.Uint64("input", input),
		zap.String("repr", repr))

	result, err := m.Run(commandContext(cmd), src, input)
	if result != nil {
		printResult(cmd, src, input, result)
	}
	return err
}

func runTrace(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args)
	if err != nil {
		return err
	}
	input, err := resolveInput(src)
	if err != nil {
		return err
	}
	budget := maxSteps
	if traceLimit != 0 {
		budget = traceLimit
	}
	m, err := newMachine(budget, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "0\t%d\n", input)
	result, err := m.Trace(commandContext(cmd), src, input, func(step uint64, value, state string) error {
		logger.Debug("Step", zap.Uint64("step", step), zap.String("state", state))
		if repr == string(vybiumfractran.Native) {
			_, err := fmt.Fprintf(out, "%d\t%s\n", step, value)
			return err
		}
		_, err := fmt.Fprintf(out, "%d\t%s\t%s\n", step, value, state)
		return err
	})

	if traceLimit != 0 && vybiumfractran.CodeOf(err) == vybiumfractran.ErrStepLimit {
		fmt.Fprintf(out, "stopped after %d steps\n", result.Steps)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "halted after %d steps\n", result.Steps)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args)
	if err != nil {
		return err
	}
	input, err := resolveInput(src)
	if err != nil {
		return err
	}
	m, err := newMachine(maxSteps, false)
	if err != nil {
		return err
	}

	cmp, err := m.Compare(commandContext(cmd), src, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "steps:  %d\n", cmp.Steps)
	fmt.Fprintf(out, "native: %s\n", cmp.NativeOutput)
	fmt.Fprintf(out, "basis:  %s\n", cmp.BasisOutput)
	if !cmp.Equal {
		return fmt.Errorf("representations diverged at step %d", cmp.DivergedAt)
	}
	fmt.Fprintln(out, "equal:  true")
	return nil
}

func runDigest(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args)
	if err != nil {
		return err
	}
	m, err := newMachine(0, false)
	if err != nil {
		return err
	}
	digest, err := m.Digest(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), digest)
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid prime count %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	for _, p := range vybiumfractran.FirstPrimes(uint16(n)) {
		fmt.Fprintln(out, p)
	}
	return nil
}

func runBuiltins(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range vybiumfractran.BuiltinNames() {
		src, err := vybiumfractran.Builtin(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s input=%-4d %s\n", name, src.Input, src.Description)
	}
	return nil
}

// loadSource picks the program from a file argument, --program or --builtin
func loadSource(args []string) (*vybiumfractran.Source, error) {
	chosen := 0
	if len(args) == 1 {
		chosen++
	}
	if programText != "" {
		chosen++
	}
	if builtinName != "" {
		chosen++
	}
	switch {
	case chosen == 0:
		return nil, errors.New("no program: pass a file, --program or --builtin")
	case chosen > 1:
		return nil, errors.New("pass only one of a file, --program or --builtin")
	}

	switch {
	case len(args) == 1:
		logger.Debug("Loading program file", zap.String("path", args[0]))
		return vybiumfractran.LoadProgram(args[0])
	case programText != "":
		return vybiumfractran.ParseProgram("inline", programText)
	default:
		return vybiumfractran.Builtin(builtinName)
	}
}

// resolveInput prefers --input over the program's own input
func resolveInput(src *vybiumfractran.Source) (uint64, error) {
	if inputValue != 0 {
		return inputValue, nil
	}
	if src.Input != 0 {
		return src.Input, nil
	}
	return 0, fmt.Errorf("program %q has no default input: pass --input", src.Name)
}

func newMachine(steps uint64, record bool) (vybiumfractran.Machine, error) {
	config := vybiumfractran.DefaultConfig()
	config.MaxRegs = maxRegs
	config.MaxSteps = steps
	config.Representation = vybiumfractran.Representation(repr)
	config.HashFunction = hashFunc
	config.RecordTrace = record
	return vybiumfractran.NewMachine(config)
}

// commandContext returns the command's context, or a background context for
// commands executed outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printResult(cmd *cobra.Command, src *vybiumfractran.Source, input uint64, result *vybiumfractran.RunResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "program:     %s\n", src.Name)
	fmt.Fprintf(out, "input:       %d\n", input)
	fmt.Fprintf(out, "output:      %s\n", result.Output)
	if result.State != result.Output {
		fmt.Fprintf(out, "state:       %s\n", result.State)
	}
	fmt.Fprintf(out, "steps:       %d\n", result.Steps)
	fmt.Fprintf(out, "halted:      %t\n", result.Halted)
	fmt.Fprintf(out, "digest:      %s\n", result.ProgramDigest)
	fmt.Fprintf(out, "fingerprint: %s\n", result.TraceFingerprint)
	if result.TraceCommitment != "" {
		fmt.Fprintf(out, "commitment:  %s\n", result.TraceCommitment)
	}
}
