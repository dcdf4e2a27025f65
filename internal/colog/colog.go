// Package colog is a minimal leveled logger used by the coupling scheme
// to report per-cycle diagnostics (§7). It writes plain fmt.Fprintf lines
// to an output stream (stderr by default) rather than adopting a structured-logging
// dependency the source never uses.
package colog

import (
	"fmt"
	"os"

	"github.com/notargets/gocontact/contactcfg"
)

// Logger writes leveled messages to an output stream, filtering anything
// below its configured level.
type Logger struct {
	Level contactcfg.LogLevel
	Out   *os.File
}

// New returns a Logger writing to stderr at the given level.
func New(level contactcfg.LogLevel) *Logger {
	return &Logger{Level: level, Out: os.Stderr}
}

func (l *Logger) log(level contactcfg.LogLevel, format string, args ...interface{}) {
	if l == nil || level < l.Level {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...interface{})   { l.log(contactcfg.Debug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})    { l.log(contactcfg.Info, format, args...) }
func (l *Logger) Warning(format string, args ...interface{}) { l.log(contactcfg.Warning, format, args...) }
func (l *Logger) Error(format string, args ...interface{})   { l.log(contactcfg.ErrorLevel, format, args...) }
