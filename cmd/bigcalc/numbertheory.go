package main

import (
	"github.com/spf13/cobra"

	"github.com/agbruneau/bigint/bigint"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd x y",
	Short: "Compute the greatest common divisor of x and y",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("gcd", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("gcd", err)
		}
		runOp("gcd", operandFields(x, y), func() (*bigint.Int, error) {
			return x.GCD(y), nil
		})
	},
}

var lcmCmd = &cobra.Command{
	Use:   "lcm x y",
	Short: "Compute the least common multiple of x and y",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("lcm", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("lcm", err)
		}
		runOp("lcm", operandFields(x, y), func() (*bigint.Int, error) {
			return x.LCM(y)
		})
	},
}
