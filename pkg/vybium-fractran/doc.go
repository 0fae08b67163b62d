// Package vybiumfractran runs Fractran programs.
//
// A Fractran program is an ordered list of fractions. Starting from a
// positive integer, the machine repeatedly multiplies the state by the first
// fraction that keeps it an integer, and halts when no fraction applies.
//
// # Representations
//
// The state can be stored two ways:
//
//   - Native: a 64-bit unsigned integer. Fast, but a run fails with
//     ErrNativeOverflow as soon as an intermediate product needs more bits.
//   - Basis: the vector of exponents of the state's prime factorization over
//     a fixed bank of MaxRegs primes. Multiplication and division become
//     exponent addition and subtraction, so states far beyond 64 bits stay
//     cheap. Values with a prime factor outside the bank are rejected with
//     ErrRegisterOverflow.
//
// # Quick Start
//
//	machine, err := vybiumfractran.NewMachine(vybiumfractran.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	source := &vybiumfractran.Source{
//		Name:      "multiply",
//		Fractions: []string{"455/33", "11/13", "1/11", "3/7", "11/2", "1/3"},
//	}
//
//	// 72 = 2^3 * 3^2, so the program halts at 5^6
//	result, err := machine.Run(ctx, source, 72)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output) // 15625
//
// # Non-halting programs
//
// With MaxSteps set to 0 a run lasts until the program halts, which for some
// programs (PRIMEGAME, for one) is never. Set MaxSteps, or cancel the
// context, to bound a run; a run stopped by its budget returns the partial
// result together with ErrStepLimit.
//
// # Architecture
//
//   - pkg/vybium-fractran/: Public API (this package)
//   - internal/vybium-fractran/core: numeric representations and the register bank
//   - internal/vybium-fractran/vm: fractions, programs, evaluators, digests
//   - internal/vybium-fractran/loader: program text, YAML files and built-ins
package vybiumfractran
