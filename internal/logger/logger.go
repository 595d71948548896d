// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the synchronizer.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and derive enriched
// loggers via GetChildLogger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options controls sink construction for [NewSyncLogger].
type Options struct {
	// Verbose lowers the global level to Debug; the default is Info.
	Verbose bool

	// NoColor disables ANSI styling on the console sink.
	NoColor bool

	// FilePath, when non-empty, mirrors every entry to the named file in
	// plain JSON, appending across runs. Errors opening the file are
	// ignored; the console sink always works.
	FilePath string
}

// NewSyncLogger constructs a *Logger for the given role label (e.g.
// "syncer"). Console output goes to stderr through zerolog.ConsoleWriter so
// log lines never interleave with the progress line on stdout; an optional
// file sink keeps a machine-readable record of the run.
func NewSyncLogger(role string, opts Options) *Logger {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
	}

	var sink io.Writer = console
	if opts.FilePath != "" {
		if f, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			sink = zerolog.MultiLevelWriter(console, f)
		}
	}

	logger := zerolog.New(sink).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
