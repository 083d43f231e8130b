// Package logging provides colored, leveled log output for the gate-check CLI.
//
// Output goes through a Logger instance handed to each component rather than
// package-level state, so the engine can be driven with a silenced or
// redirected logger in tests. Debug output is suppressed unless the logger
// was created with verbose enabled.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	headerPrefix  = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// Logger writes prefixed, color-coded lines to its output streams.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// New returns a Logger writing to stdout/stderr.
func New(verbose bool) *Logger {
	return &Logger{out: os.Stdout, errOut: os.Stderr, verbose: verbose}
}

// NewWithWriters returns a Logger with explicit output streams, for tests.
func NewWithWriters(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

// Info prints an informational message in blue.
func (l *Logger) Info(format string, args ...any) {
	fmt.Fprintln(l.out, infoPrefix("[INFO]")+" "+fmt.Sprintf(format, args...))
}

// Success prints a success message in green.
func (l *Logger) Success(format string, args ...any) {
	fmt.Fprintln(l.out, successPrefix("[SUCCESS]")+" "+fmt.Sprintf(format, args...))
}

// Warn prints a warning message to the error stream in yellow.
func (l *Logger) Warn(format string, args ...any) {
	fmt.Fprintln(l.errOut, warnPrefix("[WARN]")+" "+fmt.Sprintf(format, args...))
}

// Error prints an error message to the error stream in red.
func (l *Logger) Error(format string, args ...any) {
	fmt.Fprintln(l.errOut, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

// Header prints a scope header in cyan, surrounded by separator lines.
func (l *Logger) Header(format string, args ...any) {
	sep := headerPrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(l.out, sep)
	fmt.Fprintln(l.out, headerPrefix("[GATE]")+" "+fmt.Sprintf(format, args...))
	fmt.Fprintln(l.out, sep)
}

// Debug prints a debug message in blue, only when verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintln(l.out, debugPrefix("[DEBUG]")+" "+fmt.Sprintf(format, args...))
}

// Println prints an unprefixed line to the output stream.
func (l *Logger) Println(args ...any) {
	fmt.Fprintln(l.out, args...)
}
