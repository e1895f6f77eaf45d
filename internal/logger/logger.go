package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
)

func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return ERROR, nil
	case "warn":
		return WARN, nil
	case "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	}
	return INFO, fmt.Errorf("invalid log level: %s", lvl)
}

func (l Level) String() string {
	switch l {
	case ERROR:
		return "error"
	case WARN:
		return "warn"
	case INFO:
		return "info"
	case DEBUG:
		return "debug"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Logger is a simple leveled logger.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a new Logger writing to stderr.
func New(level Level) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Level() Level {
	return l.level
}

// Errorf prints a formatted error message.
func (l *Logger) Errorf(format string, v ...any) {
	l.printf(ERROR, format, v...)
}

// Warnf prints a formatted warning message.
func (l *Logger) Warnf(format string, v ...any) {
	l.printf(WARN, format, v...)
}

// Infof prints a formatted info message.
func (l *Logger) Infof(format string, v ...any) {
	l.printf(INFO, format, v...)
}

// Debugf prints a formatted debug message.
func (l *Logger) Debugf(format string, v ...any) {
	l.printf(DEBUG, format, v...)
}

func (l *Logger) printf(level Level, format string, v ...any) {
	if l.level < level {
		return
	}
	l.out.Printf("%-5s "+format, append([]any{strings.ToUpper(level.String())}, v...)...)
}
