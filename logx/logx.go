// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logx wraps zap.Logger behind a small interface so the rest of
// the module depends on a shape it controls rather than on zap directly.
package logx

import "go.uber.org/zap"

// Logger is the structured logging surface used throughout the module.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)

	// With returns a Logger that always includes fields in its output.
	With(fields ...zap.Field) Logger
}

type zapLogger struct {
	l *zap.Logger
}

// New wraps an existing zap.Logger.
func New(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}

type nopLogger struct{}

// NewNop returns a Logger that discards everything, for tests and
// callers that have not wired a real sink.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}
func (nopLogger) With(...zap.Field) Logger   { return nopLogger{} }
