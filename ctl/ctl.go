// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package ctl contains the commands behind the bitmap command line tool.
package ctl

import (
	"io"

	"github.com/aleics/bitmap/logger"
	"github.com/pkg/errors"
)

// UsageError marks command failures caused by invalid arguments rather than
// by the evaluation itself.
var UsageError = errors.New("usage error")

// CmdIO holds standard unix inputs and outputs.
type CmdIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger logger.Logger
}

// NewCmdIO returns a new instance of CmdIO with inputs and outputs set to
// the arguments.
func NewCmdIO(stdin io.Reader, stdout, stderr io.Writer) *CmdIO {
	return &CmdIO{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		logger: logger.NewStandardLogger(stderr),
	}
}

// Logger returns the command's logger.
func (c *CmdIO) Logger() logger.Logger {
	return c.logger
}

// SetVerbose swaps the command's logger for one that also emits debug
// messages.
func (c *CmdIO) SetVerbose() {
	c.logger = logger.NewVerboseLogger(c.Stderr)
}
