// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/aleics/bitmap"
	"github.com/pkg/errors"
)

// EvalCommand represents a command for applying a boolean operator to
// bit-string operands and printing the rendered result.
type EvalCommand struct {
	// Operator to apply: and, or, xor or not.
	Op string

	// Representation to evaluate with: dense or sparse.
	Repr string

	// Verbose enables debug logging.
	Verbose bool

	// Operands are the bit-strings the operator is applied to.
	Operands []string

	// Standard input/output
	*CmdIO
}

// NewEvalCommand returns a new instance of EvalCommand.
func NewEvalCommand(stdin io.Reader, stdout, stderr io.Writer) *EvalCommand {
	return &EvalCommand{
		Op:    "and",
		Repr:  "sparse",
		CmdIO: NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the evaluation.
func (cmd *EvalCommand) Run(_ context.Context) error {
	if cmd.Verbose {
		cmd.SetVerbose()
	}
	log := cmd.Logger()

	// Validate arguments.
	switch cmd.Op {
	case "not":
		if len(cmd.Operands) != 1 {
			return errors.Wrap(UsageError, "not takes exactly one operand")
		}
	case "and", "or", "xor":
		if len(cmd.Operands) != 2 {
			return errors.Wrapf(UsageError, "%s takes exactly two operands", cmd.Op)
		}
	default:
		return errors.Wrapf(UsageError, "unknown operator %q", cmd.Op)
	}

	var (
		result string
		err    error
	)
	switch cmd.Repr {
	case "dense":
		result, err = evalDense(cmd.Op, cmd.Operands)
	case "sparse":
		result, err = evalSparse(cmd.Op, cmd.Operands)
	default:
		return errors.Wrapf(UsageError, "unknown representation %q", cmd.Repr)
	}
	if err != nil {
		return errors.Wrap(err, "evaluating")
	}

	log.Debugf("evaluated %s over %d %s operand(s)", cmd.Op, len(cmd.Operands), cmd.Repr)
	fmt.Fprintln(cmd.Stdout, result)
	return nil
}

func evalDense(op string, operands []string) (string, error) {
	a, err := bitmap.ParseDense(operands[0])
	if err != nil {
		return "", err
	}
	if op == "not" {
		return a.Flip().String(), nil
	}
	b, err := bitmap.ParseDense(operands[1])
	if err != nil {
		return "", err
	}
	switch op {
	case "and":
		return a.Intersect(b).String(), nil
	case "or":
		return a.Union(b).String(), nil
	default:
		return a.Xor(b).String(), nil
	}
}

func evalSparse(op string, operands []string) (string, error) {
	a, err := bitmap.ParseSparse(operands[0])
	if err != nil {
		return "", err
	}
	if op == "not" {
		return a.Flip().String(), nil
	}
	b, err := bitmap.ParseSparse(operands[1])
	if err != nil {
		return "", err
	}
	switch op {
	case "and":
		return a.Intersect(b).String(), nil
	case "or":
		return a.Union(b).String(), nil
	default:
		return a.Xor(b).String(), nil
	}
}
