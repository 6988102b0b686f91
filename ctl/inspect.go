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

// InspectCommand represents a command for reporting capacity and encoding
// statistics of a bit-string under both representations.
type InspectCommand struct {
	// Input is the bit-string to inspect.
	Input string

	// Standard input/output
	*CmdIO
}

// NewInspectCommand returns a new instance of InspectCommand.
func NewInspectCommand(stdin io.Reader, stdout, stderr io.Writer) *InspectCommand {
	return &InspectCommand{
		CmdIO: NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the inspection.
func (cmd *InspectCommand) Run(_ context.Context) error {
	if cmd.Input == "" {
		return errors.Wrap(UsageError, "an input bit-string is required")
	}

	dense, err := bitmap.ParseDense(cmd.Input)
	if err != nil {
		return errors.Wrap(err, "parsing input")
	}
	sparse, err := bitmap.ParseSparse(cmd.Input)
	if err != nil {
		return errors.Wrap(err, "parsing input")
	}

	fmt.Fprintf(cmd.Stdout, "size:  %d\n", dense.Size())
	fmt.Fprintf(cmd.Stdout, "bits:  %d\n", dense.Count())
	fmt.Fprintf(cmd.Stdout, "words: %d\n", dense.WordCount())
	fmt.Fprintf(cmd.Stdout, "runs:  %d\n", sparse.RunCount())
	return nil
}
