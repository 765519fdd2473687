// This file provides the concrete Logger implementations: a zerolog-backed
// adapter for structured output and a minimal stdlib-backed adapter for
// environments where pulling in zerolog is undesirable.

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String constructs a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int constructs an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 constructs a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 constructs a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err constructs an error-valued Field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface consumed throughout this module. It is
// deliberately small: structured Info/Debug/Error plus two printf-style
// escape hatches for call sites that only need plain text.
type Logger interface {
	Info(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger returns a Logger writing human-readable console output to
// stderr at info level, suitable as the application default.
func NewDefaultLogger() Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

// NewLogger returns a Logger writing to w, tagging every record with the
// given component name.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// Info logs msg at info level with the given structured fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Debug logs msg at debug level with the given structured fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Error logs msg at error level, attaching err and any extra fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.zl.Error().Err(err)
	applyFields(e, fields).Msg(msg)
}

// Printf logs a formatted message at info level with no structured fields.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments, space-joined, at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// log.Logger, for call sites that want plain `[LEVEL] message key=value`
// lines without pulling in zerolog's dependency graph.
type StdLoggerAdapter struct {
	std *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(std *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{std: std}
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return " " + strings.Join(parts, " ")
}

// Info logs msg at info level with the given structured fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.std.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Debug logs msg at debug level with the given structured fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.std.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Error logs msg at error level, attaching err and any extra fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	all := append([]Field{Err(err)}, fields...)
	a.std.Printf("[ERROR] %s%s", msg, formatFields(all))
}

// Printf logs a formatted message with no level prefix.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.std.Printf(format, args...)
}

// Println logs its arguments, space-joined, with no level prefix.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.std.Println(args...)
}
