// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package enginelog

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *log.Logger for routine, debug-gated trace output and
// a *logrus.Logger for structured events worth alerting on. Debug is
// read on every call rather than captured once, so a blueprint can
// flip tracing on mid-run (e.g. from a REPL "debug on" command).
type Logger struct {
	std    *log.Logger
	structured *logrus.Logger
	Debug  bool
}

// New builds a Logger writing plain trace lines to std's destination
// and structured fields to stderr as logrus text output.
func New(debug bool) *Logger {
	sl := logrus.New()
	sl.SetOutput(os.Stderr)
	return &Logger{
		std:     log.New(os.Stderr, "", log.LstdFlags),
		structured: sl,
		Debug:   debug,
	}
}

// Debugf logs a trace line only when Debug is enabled, mirroring the
// debugf-closure pattern used throughout the parsing pipeline.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.Debug {
		return
	}
	l.std.Printf(format, args...)
}

// InternalEngineError logs a handler-reported internal engine error
// with structured fields for the turn and offending handler.
func (l *Logger) InternalEngineError(turn int, handler string, err error) {
	if l == nil {
		return
	}
	l.structured.WithFields(logrus.Fields{
		"turn":    turn,
		"handler": handler,
	}).Errorf("internal engine error: %v", err)
}

// FuseFailed logs one failed fuse invocation.
func (l *Logger) FuseFailed(turn int, fuseID string, consecutive int, err error) {
	if l == nil {
		return
	}
	l.structured.WithFields(logrus.Fields{
		"turn":        turn,
		"fuseId":      fuseID,
		"consecutive": consecutive,
	}).Errorf("fuse failed: %v", err)
}

// FuseRemoved logs a fuse's removal after repeated failure.
func (l *Logger) FuseRemoved(turn int, fuseID string) {
	if l == nil {
		return
	}
	l.structured.WithFields(logrus.Fields{
		"turn":   turn,
		"fuseId": fuseID,
	}).Warn("fuse removed after repeated failure")
}

// DaemonFailed logs one failed daemon invocation.
func (l *Logger) DaemonFailed(turn int, daemonID string, consecutive int, err error) {
	if l == nil {
		return
	}
	l.structured.WithFields(logrus.Fields{
		"turn":        turn,
		"daemonId":    daemonID,
		"consecutive": consecutive,
	}).Errorf("daemon failed: %v", err)
}

// DaemonRemoved logs a daemon's removal after repeated failure.
func (l *Logger) DaemonRemoved(turn int, daemonID string) {
	if l == nil {
		return
	}
	l.structured.WithFields(logrus.Fields{
		"turn":     turn,
		"daemonId": daemonID,
	}).Warn("daemon removed after repeated failure")
}
