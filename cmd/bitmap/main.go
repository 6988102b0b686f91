// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
/*
This is the entrypoint for the bitmap binary.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleics/bitmap/ctl"
)

func main() {
	rootCmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bitmap",
		Short: "Boolean algebra over dense and sparse fixed-capacity bitmaps.",
	}
	rootCmd.AddCommand(newEvalCommand(stdin, stdout, stderr))
	rootCmd.AddCommand(newInspectCommand(stdin, stdout, stderr))
	return rootCmd
}

func newEvalCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	eval := ctl.NewEvalCommand(stdin, stdout, stderr)
	evalCmd := &cobra.Command{
		Use:   "eval OPERAND [OPERAND]",
		Short: "Apply a boolean operator to bit-strings.",
		Long: `
Applies a boolean operator to one or two bit-string operands and prints the
rendered result. Operands are strings of '0' and '1' characters; the
rightmost character is bit position 0. Binary operators produce a result
sized to the smaller operand.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eval.Operands = args
			return eval.Run(context.Background())
		},
	}
	flags := evalCmd.Flags()
	flags.StringVarP(&eval.Op, "op", "o", "and", "Operator to apply: and, or, xor or not.")
	flags.StringVarP(&eval.Repr, "repr", "r", "sparse", "Representation to evaluate with: dense or sparse.")
	flags.BoolVarP(&eval.Verbose, "verbose", "v", false, "Enable verbose logging.")
	return evalCmd
}

func newInspectCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	inspect := ctl.NewInspectCommand(stdin, stdout, stderr)
	inspectCmd := &cobra.Command{
		Use:   "inspect BITSTRING",
		Short: "Report capacity and encoding statistics for a bit-string.",
		Long: `
Parses a bit-string into both the dense and the sparse representation and
reports the declared capacity, the number of set bits, the number of backing
64-bit words and the number of runs.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				inspect.Input = args[0]
			}
			return inspect.Run(context.Background())
		},
	}
	return inspectCmd
}
