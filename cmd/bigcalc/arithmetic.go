package main

import (
	"github.com/spf13/cobra"

	"github.com/agbruneau/bigint/bigint"
)

var addCmd = &cobra.Command{
	Use:   "add x y",
	Short: "Add two decimal integers",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("add", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("add", err)
		}
		runOp("add", operandFields(x, y), func() (*bigint.Int, error) {
			return x.Add(y), nil
		})
	},
}

var subCmd = &cobra.Command{
	Use:   "sub x y",
	Short: "Subtract y from x",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("sub", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("sub", err)
		}
		runOp("sub", operandFields(x, y), func() (*bigint.Int, error) {
			return x.Sub(y), nil
		})
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul x y",
	Short: "Multiply two decimal integers",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("mul", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("mul", err)
		}
		runOp("mul", operandFields(x, y), func() (*bigint.Int, error) {
			return x.Mul(y), nil
		})
	},
}

var divCmd = &cobra.Command{
	Use:   "div x y",
	Short: "Divide x by y, truncating toward zero",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		x, err := parseOperand("x", args[0])
		if err != nil {
			fail("div", err)
		}
		y, err := parseOperand("y", args[1])
		if err != nil {
			fail("div", err)
		}
		runOp("div", operandFields(x, y), func() (*bigint.Int, error) {
			return x.Div(y)
		})
	},
}
