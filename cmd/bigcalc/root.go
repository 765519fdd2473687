package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbruneau/bigint/bigint"
	"github.com/agbruneau/bigint/internal/cli"
	apperrors "github.com/agbruneau/bigint/internal/errors"
	"github.com/agbruneau/bigint/internal/logging"
)

var (
	flagTimeout time.Duration
	flagVerbose bool
	flagQuiet   bool
	flagJSON    bool
)

var logger = logging.NewDefaultLogger()

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision integer arithmetic from the command line",
	Long: "bigcalc exercises the bigint kernel's operations directly: every\n" +
		"subcommand parses its operands as decimal integers, runs one kernel\n" +
		"call, and prints the result.",
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0,
		"wall-clock limit for a single invocation (0 disables the limit)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"show operand/result size and timing alongside the result")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"print only the bare decimal result")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print the result as a JSON object")

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd)
	rootCmd.AddCommand(powCmd, sqrtCmd, rootOpCmd, modpowCmd)
	rootCmd.AddCommand(gcdCmd, lcmCmd)
	rootCmd.AddCommand(factorialCmd, randCmd)
}

// parseOperand parses s as a decimal bigint, reporting failures as an
// apperrors.ValidationError naming the offending flag/argument.
func parseOperand(name, s string) (*bigint.Int, error) {
	x, err := bigint.Parse(s)
	if err != nil {
		return nil, apperrors.ValidationError{Field: name, Message: err.Error()}
	}
	return x, nil
}

// operandFields builds the logging fields bigcalc attaches to every
// dispatch log line: bit-lengths only, never decimal values, so operator
// logs never leak the numbers a caller is computing with.
func operandFields(operands ...*bigint.Int) []logging.Field {
	fields := make([]logging.Field, len(operands))
	for i, x := range operands {
		fields[i] = logging.Int("operand_bits", x.BitLen())
	}
	return fields
}

// runOp dispatches fn with --timeout enforced at the process level, logs
// the outcome, renders the result according to the active display flags,
// and terminates the process with the exit code the application defines
// for fn's outcome. The kernel itself has no cancellation points, so a
// timeout only stops bigcalc from waiting on it; the goroutine computing
// fn keeps running until it finishes on its own.
func runOp(opName string, fields []logging.Field, fn func() (*bigint.Int, error)) {
	logger.Info("dispatching operation", append([]logging.Field{logging.String("op", opName)}, fields...)...)

	type outcome struct {
		x   *bigint.Int
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		x, err := fn()
		done <- outcome{x, err}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	if flagTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), flagTimeout)
	}
	defer cancel()

	select {
	case o := <-done:
		elapsed := time.Since(start)
		if o.err != nil {
			logger.Error("operation failed", o.err, logging.String("op", opName))
			cli.DisplayError(os.Stderr, opName, o.err)
			os.Exit(cli.ExitCodeFor(o.err))
		}
		result := cli.NewResult(opName, o.x, elapsed)
		logger.Info("operation completed", logging.String("op", opName),
			logging.Int("result_bits", result.BitLen), logging.Int("result_digits", result.Digits))
		if err := cli.DisplayResult(os.Stdout, result, flagVerbose, flagQuiet, flagJSON); err != nil {
			cli.DisplayError(os.Stderr, opName, err)
			os.Exit(apperrors.ExitErrorGeneric)
		}
	case <-ctx.Done():
		err := apperrors.TimeoutError{Operation: opName, Limit: flagTimeout}
		logger.Error("operation timed out", err, logging.String("op", opName))
		cli.DisplayError(os.Stderr, opName, err)
		os.Exit(apperrors.ExitErrorTimeout)
	}
}

// fail reports a validation or configuration error from argument parsing
// (before any kernel call is dispatched) and exits with the matching code.
func fail(opName string, err error) {
	cli.DisplayError(os.Stderr, opName, err)
	os.Exit(cli.ExitCodeFor(err))
}
