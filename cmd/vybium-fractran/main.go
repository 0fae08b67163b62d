package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Program selection
	programText string
	builtinName string
	inputValue  uint64

	// Machine flags
	repr        string
	maxSteps    uint64
	maxRegs     uint16
	hashFunc    string
	recordTrace bool
	traceLimit  uint64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vybium-fractran",
	Short: "Fractran interpreter with native and prime-basis arithmetic",
	Long: `vybium-fractran runs Fractran programs.

A program is read from a file (plain fraction text or YAML), from --program
or from the built-in catalogue (--builtin). The state is stored either as a
64-bit integer (--repr native) or as prime exponents (--repr basis), which
keeps very large states cheap.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{runCmd, traceCmd, compareCmd, digestCmd} {
		cmd.Flags().StringVarP(&programText, "program", "p", "", "Program as fraction text, e.g. \"17/91 78/85\"")
		cmd.Flags().StringVarP(&builtinName, "builtin", "b", "", "Built-in program name (see 'builtins')")
		cmd.Flags().Uint16Var(&maxRegs, "max-regs", 1000, "Register bank size (number of primes)")
		cmd.Flags().StringVar(&repr, "repr", "basis", "State representation: native or basis")
		cmd.Flags().StringVar(&hashFunc, "hash", "tip5", "Digest hash: tip5, sha3 or sha256")
	}
	for _, cmd := range []*cobra.Command{runCmd, traceCmd, compareCmd} {
		cmd.Flags().Uint64VarP(&inputValue, "input", "i", 0, "Initial state (default: the program's own input)")
		cmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "Step budget, 0 to run until halted")
	}
	runCmd.Flags().BoolVar(&recordTrace, "record-trace", false, "Commit to the trace with a Merkle root (needs --max-steps)")
	traceCmd.Flags().Uint64Var(&traceLimit, "limit", 0, "Stop after this many states")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(builtinsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
