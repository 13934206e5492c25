// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; options only observe, they never
//     change which pivot is chosen or the reduced result.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"io"
	"log/slog"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil   = "matrix: WithLogger: logger must be non-nil"
	panicStepHookNil = "matrix: WithStepHook: hook must be non-nil"
)

// discardLogger is the default sink: events are dropped without formatting.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger // debug trace of row operations; discardLogger by default
	hook   func(Step)   // per-step observer; nil means none
}

// WithLogger routes a debug-level trace of every elimination step to logger.
// Implementation:
//   - Stage 1: reject nil.
//   - Stage 2: return a setter that stores a "component=matrix" child logger.
//
// Errors:
//   - Panics with a stable message when logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}
	l := logger.With(slog.String("component", "matrix"))

	return func(o *Options) { o.logger = l }
}

// WithStepHook calls hook after every pivot selection, row exchange, pivot
// row normalization and row elimination, in execution order. The hook runs
// synchronously and must not mutate the matrix.
//
// Errors:
//   - Panics with a stable message when hook is nil.
func WithStepHook(hook func(Step)) Option {
	if hook == nil {
		panic(panicStepHookNil)
	}

	return func(o *Options) { o.hook = hook }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{logger: discardLogger}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// emit reports one step to the hook and the logger.
func (o *Options) emit(s Step) {
	if o.hook != nil {
		o.hook(s)
	}
	o.logger.Debug("gauss step",
		slog.String("kind", s.Kind.String()),
		slog.Int("pivot", s.Pivot),
		slog.Int("row", s.Row),
		slog.Int("column", s.Column),
	)
}
