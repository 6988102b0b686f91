// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package logger defines the shared logging interface used by the command
// line tooling.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger represents an interface for a shared logger.
type Logger interface {
	Printf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	// WithPrefix returns a new Logger with the same configuration as
	// this one, but all logs will have the given prefix.
	WithPrefix(prefix string) Logger
}

const (
	LevelError = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// LevelPrefix returns the message prefix for a log level.
func LevelPrefix(level int) string {
	return [...]string{"ERROR: ", "WARN:  ", "INFO:  ", "DEBUG: "}[level]
}

// StderrLogger is the default logger for commands that were not handed one.
var StderrLogger = NewStandardLogger(os.Stderr)

// NopLogger represents a Logger that doesn't do anything.
var NopLogger Logger = &nopLogger{}

// Ensure nopLogger implements interface.
var _ Logger = &nopLogger{}

type nopLogger struct{}

// Printf is a no-op implementation of the Logger Printf method.
func (n *nopLogger) Printf(format string, v ...interface{}) {}

// Debugf is a no-op implementation of the Logger Debugf method.
func (n *nopLogger) Debugf(format string, v ...interface{}) {}

// Infof is a no-op implementation of the Logger Infof method.
func (n *nopLogger) Infof(format string, v ...interface{}) {}

// Warnf is a no-op implementation of the Logger Warnf method.
func (n *nopLogger) Warnf(format string, v ...interface{}) {}

// Errorf is a no-op implementation of the Logger Errorf method.
func (n *nopLogger) Errorf(format string, v ...interface{}) {}

// WithPrefix is a no-op implementation of the Logger WithPrefix method.
func (n *nopLogger) WithPrefix(prefix string) Logger { return n }

// standardLogger is a basic implementation of Logger based on log.Logger,
// filtering messages above its level.
type standardLogger struct {
	logger *log.Logger
	level  int
	prefix string
}

// NewStandardLogger returns a logger that writes messages at Info level and
// below to w.
func NewStandardLogger(w io.Writer) Logger {
	return &standardLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  LevelInfo,
	}
}

// NewVerboseLogger returns a logger that also writes Debug messages to w.
func NewVerboseLogger(w io.Writer) Logger {
	return &standardLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  LevelDebug,
	}
}

func (s *standardLogger) logf(level int, format string, v ...interface{}) {
	if level > s.level {
		return
	}
	s.logger.Printf(s.prefix+LevelPrefix(level)+format, v...)
}

func (s *standardLogger) Printf(format string, v ...interface{}) {
	s.logger.Printf(s.prefix+format, v...)
}

func (s *standardLogger) Debugf(format string, v ...interface{}) {
	s.logf(LevelDebug, format, v...)
}

func (s *standardLogger) Infof(format string, v ...interface{}) {
	s.logf(LevelInfo, format, v...)
}

func (s *standardLogger) Warnf(format string, v ...interface{}) {
	s.logf(LevelWarn, format, v...)
}

func (s *standardLogger) Errorf(format string, v ...interface{}) {
	s.logf(LevelError, format, v...)
}

func (s *standardLogger) WithPrefix(prefix string) Logger {
	return &standardLogger{logger: s.logger, level: s.level, prefix: prefix}
}
