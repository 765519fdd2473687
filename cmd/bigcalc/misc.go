package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agbruneau/bigint/bigint"
	apperrors "github.com/agbruneau/bigint/internal/errors"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial n",
	Short: "Compute n!",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fail("factorial", apperrors.ValidationError{Field: "n", Message: err.Error()})
		}
		runOp("factorial", nil, func() (*bigint.Int, error) {
			return bigint.Factorial(n), nil
		})
	},
}

var randCmd = &cobra.Command{
	Use:   "rand digits",
	Short: "Generate a random non-negative integer with at most the given digit count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		digits, err := strconv.Atoi(args[0])
		if err != nil {
			fail("rand", apperrors.ValidationError{Field: "digits", Message: err.Error()})
		}
		runOp("rand", nil, func() (*bigint.Int, error) {
			return bigint.Rand(digits), nil
		})
	},
}
