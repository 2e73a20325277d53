/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements the leveled, named logger shared by the tree
// packages. Output is produced by hashicorp's hclog.
package log

import (
	"io"
	"strings"
)

// Level represents the logging level.
type Level uint32

const (
	// NotSet level is used to indicate that no level has been set
	// and allow for a default to be used
	NotSet Level = iota

	// Off is intended to avoid tracing any action.
	Off

	// Error designates error events that the caller is expected to see
	// through a returned error as well.
	Error

	// Warn designates potentially harmful situations (e.g. a rejected
	// block).
	Warn

	// Info designates coarse-grained state changes such as a tree being
	// created.
	Info

	// Debug designates per operation events (inserts, root computations).
	Debug

	// Trace designates per level events of a reduction. Very verbose.
	Trace
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// LevelFromString returns a Level type for the named log level, or
// "NotSet" if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "off", "silent":
		return Off
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	default:
		return NotSet
	}
}

// Logger describes the interface that must be implemented
// by all loggers.
type Logger interface {
	// Trace emits a message at the TRACE level.
	Trace(msg string)
	// Tracef formats a message according to a format specifier
	// and emits it at the TRACE level.
	Tracef(format string, args ...interface{})
	// Debug emits a message at the DEBUG level.
	Debug(msg string)
	// Debugf formats a message according to a format specifier
	// and emits it at the DEBUG level.
	Debugf(format string, args ...interface{})
	// Info emits a message at the INFO level.
	Info(msg string)
	// Infof formats a message according to a format specifier
	// and emits it at the INFO level.
	Infof(format string, args ...interface{})
	// Warn emits a message at the WARN level.
	Warn(msg string)
	// Warnf formats a message according to a format specifier
	// and emits it at the WARN level.
	Warnf(format string, args ...interface{})
	// Error emits a message at the ERROR level.
	Error(msg string)
	// Errorf formats a message according to a format specifier
	// and emits it at the ERROR level.
	Errorf(format string, args ...interface{})

	// Named creates a logger that will prepend the given name on front
	// of all messages. If the logger has a previously set name, the new
	// value will be the appended to it.
	Named(name string) Logger

	// WithLevel creates a logger with the given level changed.
	WithLevel(level Level) Logger

	// GetLevel returns the threshold of this logger.
	GetLevel() Level

	// IsTrace reports whether trace messages are emitted. Callers use it
	// to skip building expensive messages.
	IsTrace() bool

	// IsDebug reports whether debug messages are emitted.
	IsDebug() bool
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Messages less
	// severe than it are dropped.
	Level Level

	// Output is the writer implementation where to write logs to.
	// If nil, defaults to DefaultOutput.
	Output io.Writer

	// TimeFormat is the time format to use instead of the default one.
	TimeFormat string

	// IncludeLocation includes file and line information in each log line.
	IncludeLocation bool
}

// New returns a new logger configured with
// the given options.
func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	o := *opts
	if o.Output == nil {
		o.Output = DefaultOutput
	}
	if o.Level == NotSet {
		o.Level = DefaultLevel
	}
	if o.TimeFormat == "" {
		o.TimeFormat = DefaultTimeFormat
	}

	return newHclogLogger(o, nil)
}
