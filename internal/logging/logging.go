// Package logging is a small logfmt logger for the reader. Output goes to a
// file in the data directory; the terminal is owned by the UI, so nothing
// here ever writes to stdout while the program runs interactively.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// Field is one key=value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
}

type fileLogger struct {
	mu    *sync.Mutex
	out   io.Writer
	level Level
	bound []Field
}

// New returns a logger writing logfmt lines at or above level. A nil writer
// yields a no-op logger.
func New(out io.Writer, level Level) Logger {
	if out == nil {
		return Nop()
	}
	return &fileLogger{mu: &sync.Mutex{}, out: out, level: level}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &fileLogger{mu: &sync.Mutex{}, out: io.Discard, level: Error + 1}
}

func (l *fileLogger) Enabled(level Level) bool {
	return l != nil && level >= l.level
}

// With returns a child logger whose lines carry the given fields.
func (l *fileLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	child := *l
	child.bound = append(append([]Field(nil), l.bound...), fields...)
	return &child
}

func (l *fileLogger) Debug(msg string, fields ...Field) { l.emit(Debug, msg, fields) }
func (l *fileLogger) Info(msg string, fields ...Field)  { l.emit(Info, msg, fields) }
func (l *fileLogger) Warn(msg string, fields ...Field)  { l.emit(Warn, msg, fields) }
func (l *fileLogger) Error(msg string, fields ...Field) { l.emit(Error, msg, fields) }

func (l *fileLogger) emit(level Level, msg string, fields []Field) {
	if !l.Enabled(level) {
		return
	}
	var buf bytes.Buffer
	writePair(&buf, "ts", time.Now().UTC().Format(time.RFC3339Nano))
	buf.WriteByte(' ')
	writePair(&buf, "level", level.String())
	buf.WriteByte(' ')
	writePair(&buf, "msg", msg)
	for _, field := range l.bound {
		buf.WriteByte(' ')
		writePair(&buf, field.Key, field.Value)
	}
	for _, field := range fields {
		buf.WriteByte(' ')
		writePair(&buf, field.Key, field.Value)
	}
	buf.WriteByte('\n')

	l.mu.Lock()
	_, _ = l.out.Write(buf.Bytes())
	l.mu.Unlock()
}

func writePair(buf *bytes.Buffer, key string, value any) {
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(formatValue(value))
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quoteIfNeeded(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case time.Duration:
		return v.String()
	case fmt.Stringer:
		return quoteIfNeeded(v.String())
	case error:
		return quoteIfNeeded(v.Error())
	default:
		return quoteIfNeeded(fmt.Sprintf("%v", v))
	}
}

func quoteIfNeeded(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, " \t\n\r\"=") {
		return strconv.Quote(value)
	}
	return value
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string onto a level, defaulting to Info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}
