// Package logger provides logging for the craftdex CLI.
// Console output goes to stderr; debug, info and warning messages only
// appear when verbose mode is enabled via the --verbose flag. Errors are
// always printed. When a log file is configured, every message is also
// written to it as JSON.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	file    slog.Handler
	log     = newLogger()
)

// Options configures the package logger.
type Options struct {
	// Verbose enables debug, info and warning output on the console.
	Verbose bool

	// File receives every message as JSON when set.
	File string
}

// Configure applies opts and returns a cleanup function that closes the
// log file. If the file cannot be opened, logging continues on the console
// only and the error is returned.
func Configure(opts Options) (func() error, error) {
	SetVerbose(opts.Verbose)
	if opts.File == "" {
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	file = slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	log = newLogger()
	mu.Unlock()

	return func() error {
		mu.Lock()
		file = nil
		log = newLogger()
		mu.Unlock()
		return f.Close()
	}, nil
}

// newLogger builds the logger from the current state (caller holds mu,
// or is the package initialiser).
func newLogger() *slog.Logger {
	console := &consoleHandler{}
	if file == nil {
		return slog.New(console)
	}
	return slog.New(slogmulti.Fanout(console, file))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the console writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger returns the underlying structured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	Logger().Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	Logger().Warn(fmt.Sprintf(format, args...))
}

// Error logs an error. Errors are printed even without verbose mode.
func Error(format string, args ...any) {
	Logger().Error(fmt.Sprintf(format, args...))
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// consoleHandler writes "[LEVEL] message key=value" lines to the
// package output, honouring verbose mode.
type consoleHandler struct {
	attrs  []slog.Attr
	prefix string
}

var writeMu sync.Mutex

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose || level >= slog.LevelError
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(r.Level.String())
	b.WriteString("] ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteString("\n")

	mu.RLock()
	w := output
	mu.RUnlock()

	writeMu.Lock()
	defer writeMu.Unlock()
	_, err := io.WriteString(w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &consoleHandler{prefix: h.prefix}
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &consoleHandler{attrs: h.attrs, prefix: h.prefix + name + "."}
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s%s=%v", prefix, a.Key, a.Value.Resolve())
}
