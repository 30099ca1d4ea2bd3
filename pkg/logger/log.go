package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level controls which messages a Logger emits.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

// String returns the short tag printed in front of each message.
func (l Level) String() string {
	return []string{"D", "I", "!", "!!", "FATAL"}[l]
}

func (l Level) color() *color.Color {
	return []*color.Color{
		color.New(color.FgWhite, color.Italic),
		color.New(color.FgWhite),
		color.New(color.FgYellow),
		color.New(color.FgHiRed, color.Bold),
		color.New(color.FgHiRed, color.Bold, color.Underline),
	}[l]
}

var (
	mu       sync.Mutex
	minLevel = INFO
)

// SetLevel sets the minimum level emitted by all loggers. Unknown names
// are ignored so a bad SVD_LOG_LEVEL value cannot silence the service.
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		minLevel = DEBUG
	case "INFO":
		minLevel = INFO
	case "WARNING", "WARN":
		minLevel = WARNING
	case "ERROR":
		minLevel = ERROR
	}
}

// Logger is a named emitter; names show up as a [prefix] on each line.
type Logger struct {
	name string
}

// Get returns a logger for the given component name.
func Get(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) emit(level Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel {
		return
	}

	msg := fmt.Sprintf("[%s] (%s) %s\n", l.name, level, fmt.Sprintf(format, args...))
	level.color().Fprint(os.Stderr, msg)
}

// Debugf emits a DEBUG level message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(DEBUG, format, args...)
}

// Infof emits an INFO level message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(INFO, format, args...)
}

// Warnf emits a WARNING level message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(WARNING, format, args...)
}

// Errorf emits an ERROR level message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(ERROR, format, args...)
}

// Fatalf emits a FATAL level message and exits the process.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.emit(FATAL, format, args...)
	os.Exit(1)
}
