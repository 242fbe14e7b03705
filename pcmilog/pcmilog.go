// Package pcmilog provides the pluggable log sink session code writes
// diagnostics through: a LogProvider interface plus an
// enable/disable gate, wired to github.com/charmbracelet/log as the
// default provider.
package pcmilog

import (
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// LogProvider is the pluggable sink: RFC5424-style levels, Critical,
// Error, Warn, Debug.
type LogProvider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Log is the gated logger the session package holds: a
// LogProvider plus an enable/disable switch, so a caller can wire in a
// provider once and flip logging on/off without re-wiring it.
type Log struct {
	provider LogProvider
	enabled  uint32
}

// New creates a Log backed by a charmbracelet/log logger prefixed with
// prefix, disabled by default.
func New(prefix string) Log {
	cl := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: prefix})
	return Log{provider: charmProvider{cl}}
}

// LogMode enables or disables log output.
func (l *Log) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&l.enabled, 1)
	} else {
		atomic.StoreUint32(&l.enabled, 0)
	}
}

// SetLogProvider rebinds the underlying provider, e.g. to a caller-supplied
// sink instead of the charmbracelet/log default.
func (l *Log) SetLogProvider(p LogProvider) {
	if p != nil {
		l.provider = p
	}
}

func (l Log) on() bool { return atomic.LoadUint32(&l.enabled) == 1 }

// Critical logs a CRITICAL level message.
func (l Log) Critical(format string, v ...interface{}) {
	if l.on() {
		l.provider.Critical(format, v...)
	}
}

// Error logs an ERROR level message.
func (l Log) Error(format string, v ...interface{}) {
	if l.on() {
		l.provider.Error(format, v...)
	}
}

// Warn logs a WARN level message.
func (l Log) Warn(format string, v ...interface{}) {
	if l.on() {
		l.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG level message.
func (l Log) Debug(format string, v ...interface{}) {
	if l.on() {
		l.provider.Debug(format, v...)
	}
}

// charmProvider adapts a charmbracelet/log logger to LogProvider.
// charmbracelet/log has no distinct "critical" level, so Critical renders
// through Error with a "[C]" marker rather than Fatal, which would exit the
// process — a library must never do that on a peer's behalf.
type charmProvider struct {
	l *charmlog.Logger
}

var _ LogProvider = charmProvider{}

func (c charmProvider) Critical(format string, v ...interface{}) {
	c.l.Errorf("[C] "+format, v...)
}

func (c charmProvider) Error(format string, v ...interface{}) {
	c.l.Errorf(format, v...)
}

func (c charmProvider) Warn(format string, v ...interface{}) {
	c.l.Warnf(format, v...)
}

func (c charmProvider) Debug(format string, v ...interface{}) {
	c.l.Debugf(format, v...)
}
