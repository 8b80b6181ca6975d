package console

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// Logger provides formatted output for the console. Command results go
// to the output stream without timestamps; status messages carry
// timestamps, and errors go to the error stream.
type Logger struct {
	verbose  bool
	useColor bool
	out      io.Writer
	errOut   io.Writer
}

// NewLogger creates a new logger writing to stdout and stderr.
func NewLogger(verbose, useColor bool) *Logger {
	return &Logger{
		verbose:  verbose,
		useColor: useColor,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// NewLoggerWithWriters creates a new logger with custom writers.
func NewLoggerWithWriters(verbose, useColor bool, out, errOut io.Writer) *Logger {
	return &Logger{
		verbose:  verbose,
		useColor: useColor,
		out:      out,
		errOut:   errOut,
	}
}

// SetVerbose sets the verbose mode.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// Output writes user-facing output without timestamps.
// This is for command results, formatted data, etc.
func (l *Logger) Output(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}

// OutputLine writes user-facing output with a newline.
func (l *Logger) OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// timestamp returns the current timestamp string.
func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// colorize applies color to text if colors are enabled.
func (l *Logger) colorize(text, colorCode string) string {
	if !l.useColor {
		return text
	}
	return fmt.Sprintf("%s%s%s", colorCode, text, colorReset)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s\n", l.timestamp(), msg)
}

// Debug logs a debug message (only in verbose mode).
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s\n", l.timestamp(), l.colorize(msg, colorGray))
}

// Error logs an error message to the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.errOut, "[%s] %s\n", l.timestamp(), l.colorize(msg, colorRed))
}

// Success logs a success message.
func (l *Logger) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s\n", l.timestamp(), l.colorize(msg, colorGreen))
}

// Prompt renders the console prompt for a service name: the name styled
// green, a '>' marker and a single trailing space.
func (l *Logger) Prompt(serviceName string) string {
	return l.colorize(serviceName, colorGreen) + "> "
}
