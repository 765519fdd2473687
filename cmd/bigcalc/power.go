package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agbruneau/bigint/bigint"
	apperrors "github.com/agbruneau/bigint/internal/errors"
)

var powCmd = &cobra.Command{
	Use:   "pow x e",
	Short: "Raise x to the non-negative integer power e",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("pow", err)
		}
		e, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fail("pow", apperrors.ValidationError{Field: "e", Message: err.Error()})
		}
		runOp("pow", operandFields(x), func() (*bigint.Int, error) {
			return x.Pow(e), nil
		})
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt x",
	Short: "Compute the floor of the square root of x",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("sqrt", err)
		}
		runOp("sqrt", operandFields(x), func() (*bigint.Int, error) {
			return x.Sqrt()
		})
	},
}

var rootOpCmd = &cobra.Command{
	Use:   "root x m",
	Short: "Compute the floor of the m-th integer root of x",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("root", err)
		}
		m, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fail("root", apperrors.ValidationError{Field: "m", Message: err.Error()})
		}
		runOp("root", operandFields(x), func() (*bigint.Int, error) {
			return x.Root(m)
		})
	},
}

var modpowMod string

func init() {
	modpowCmd.Flags().StringVar(&modpowMod, "mod", "", "modulus (required)")
}

var modpowCmd = &cobra.Command{
	Use:   "modpow x e --mod m",
	Short: "Compute x^e mod m",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if modpowMod == "" {
			fail("modpow", apperrors.ValidationError{Field: "mod", Message: "required flag --mod not set"})
		}
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("modpow", err)
		}
		e, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fail("modpow", apperrors.ValidationError{Field: "e", Message: err.Error()})
		}
		m, err := parseOperand("mod", modpowMod)
		if err != nil {
			fail("modpow", err)
		}
		runOp("modpow", operandFields(x, m), func() (*bigint.Int, error) {
			return x.PowMod(e, m)
		})
	},
}
