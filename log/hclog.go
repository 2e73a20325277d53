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

package log

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// hclogLogger implements Logger on top of an hclog.Logger.
type hclogLogger struct {
	opts  LoggerOptions
	inner hclog.Logger

	// Shared by every logger derived from this one, since they share
	// the output as well.
	mutex *sync.Mutex
}

func newHclogLogger(opts LoggerOptions, mutex *sync.Mutex) *hclogLogger {
	if mutex == nil {
		mutex = new(sync.Mutex)
	}
	inner := hclog.New(&hclog.LoggerOptions{
		Name:            opts.Name,
		Level:           toHclogLevel(opts.Level),
		Output:          opts.Output,
		TimeFormat:      opts.TimeFormat,
		IncludeLocation: opts.IncludeLocation,
		// Skip the wrapper frames so locations point at the caller.
		AdditionalLocationOffset: 1,
		Mutex:                    mutex,
	})
	return &hclogLogger{opts: opts, inner: inner, mutex: mutex}
}

func toHclogLevel(l Level) hclog.Level {
	switch l {
	case Off:
		return hclog.Off
	case Error:
		return hclog.Error
	case Warn:
		return hclog.Warn
	case Info:
		return hclog.Info
	case Debug:
		return hclog.Debug
	case Trace:
		return hclog.Trace
	default:
		return hclog.Info
	}
}

func (l *hclogLogger) Trace(msg string) { l.inner.Trace(msg) }

func (l *hclogLogger) Tracef(format string, args ...interface{}) {
	if l.inner.IsTrace() {
		l.inner.Trace(fmt.Sprintf(format, args...))
	}
}

func (l *hclogLogger) Debug(msg string) { l.inner.Debug(msg) }

func (l *hclogLogger) Debugf(format string, args ...interface{}) {
	if l.inner.IsDebug() {
		l.inner.Debug(fmt.Sprintf(format, args...))
	}
}

func (l *hclogLogger) Info(msg string) { l.inner.Info(msg) }

func (l *hclogLogger) Infof(format string, args ...interface{}) {
	if l.inner.IsInfo() {
		l.inner.Info(fmt.Sprintf(format, args...))
	}
}

func (l *hclogLogger) Warn(msg string) { l.inner.Warn(msg) }

func (l *hclogLogger) Warnf(format string, args ...interface{}) {
	if l.inner.IsWarn() {
		l.inner.Warn(fmt.Sprintf(format, args...))
	}
}

func (l *hclogLogger) Error(msg string) { l.inner.Error(msg) }

func (l *hclogLogger) Errorf(format string, args ...interface{}) {
	if l.inner.IsError() {
		l.inner.Error(fmt.Sprintf(format, args...))
	}
}

func (l *hclogLogger) Named(name string) Logger {
	opts := l.opts
	if opts.Name != "" {
		opts.Name = opts.Name + "." + name
	} else {
		opts.Name = name
	}
	return newHclogLogger(opts, l.mutex)
}

func (l *hclogLogger) WithLevel(level Level) Logger {
	opts := l.opts
	opts.Level = level
	return newHclogLogger(opts, l.mutex)
}

func (l *hclogLogger) GetLevel() Level { return l.opts.Level }

func (l *hclogLogger) IsTrace() bool { return l.inner.IsTrace() }

func (l *hclogLogger) IsDebug() bool { return l.inner.IsDebug() }
