// Package logger is a small leveled logger writing through the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "OFF", "NONE":
		return LogLevelOff, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

var levelColors = map[LogLevel][]color.Attribute{
	LogLevelDebug: {color.FgHiBlack},
	LogLevelInfo:  {color.FgCyan},
	LogLevelWarn:  {color.FgYellow},
	LogLevelError: {color.FgRed, color.Bold},
}

// DefaultLogger implements Logger on top of a log.Logger.
type DefaultLogger struct {
	level   LogLevel
	colored bool
	logger  *log.Logger
	mu      sync.RWMutex
}

func NewLogger(output io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		level:   level,
		colored: !color.NoColor,
		logger:  log.New(output, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetColor turns colored level tags on or off.
func (l *DefaultLogger) SetColor(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colored = enabled
}

// SetFlags forwards to the underlying log.Logger.
func (l *DefaultLogger) SetFlags(flags int) {
	l.logger.SetFlags(flags)
}

func (l *DefaultLogger) log(level LogLevel, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	tag := "[" + level.String() + "]"
	if attrs, ok := levelColors[level]; ok && l.colored {
		c := color.New(attrs...)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	l.logger.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

func (l *DefaultLogger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

func (l *DefaultLogger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

func (l *DefaultLogger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) SetLevel(LogLevel)    {}
func (nop) GetLevel() LogLevel   { return LogLevelOff }

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

var globalLogger = NewLogger(os.Stderr, LogLevelInfo)

// Default returns the process-wide logger.
func Default() *DefaultLogger { return globalLogger }

func SetLogLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

func Debug(format string, args ...any) {
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...any) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...any) {
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...any) {
	globalLogger.Error(format, args...)
}
