// Copyright 2025 The go-nhbench Authors. SPDX-License-Identifier: Apache-2.0

// Package logger provides component-tagged structured logging for the
// nhbench command on top of zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fields carries structured key/value context for one log line.
type Fields map[string]any

// Logger provides structured logging with context.
type Logger interface {
	Info(component, message string, fields Fields)
	Warn(component, message string, fields Fields)
	Debug(component, message string, fields Fields)
	Error(component string, err error, fields Fields)
}

// ZerologAdapter implements Logger with a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog logs JSON lines to writer at level and above.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	zerolog.DurationFieldInteger = true

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsole logs human-readable lines to stderr.
func NewConsole(level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}, level)
}

// New builds a logger from CLI settings. format is "console" or "json";
// level is any zerolog level name.
func New(format, level string) (*ZerologAdapter, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	switch strings.ToLower(format) {
	case "", "console":
		return NewConsole(lvl), nil
	case "json":
		return NewZerolog(os.Stderr, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func (z *ZerologAdapter) Info(component, message string, fields Fields) {
	z.emit(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warn(component, message string, fields Fields) {
	z.emit(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields Fields) {
	z.emit(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields Fields) {
	z.emit(z.logger.Error(), component, fields).Err(err).Msg("operation failed")
}

// emit returns nil for disabled levels; zerolog events are nil-safe.
func (z *ZerologAdapter) emit(event *zerolog.Event, component string, fields Fields) *zerolog.Event {
	if !event.Enabled() {
		return event
	}
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string, string, Fields)  {}
func (Nop) Warn(string, string, Fields)  {}
func (Nop) Debug(string, string, Fields) {}
func (Nop) Error(string, error, Fields)  {}
