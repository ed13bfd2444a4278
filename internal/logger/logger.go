package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *Logger
	instMu   sync.Mutex
)

// Logger writes to a file so the terminal stays free for the screen.
type Logger struct {
	fileLogger *log.Logger
	logFile    *os.File
	debug      bool
	mu         sync.Mutex
}

// DefaultPath is used when neither a flag nor the config file names a log.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "hed.log")
}

// Init opens (appending) the log file at path and makes it the global
// logger. Until Init succeeds every call is a no-op.
func Init(path string, debug bool) error {
	if path == "" {
		path = DefaultPath()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		fileLogger: log.New(f, "", log.LstdFlags|log.Lshortfile),
		logFile:    f,
		debug:      debug,
	}

	instMu.Lock()
	old := instance
	instance = l
	instMu.Unlock()
	if old != nil && old.logFile != nil {
		_ = old.logFile.Close()
	}
	return nil
}

func current() *Logger {
	instMu.Lock()
	defer instMu.Unlock()
	return instance
}

// Info logs an info message
func Info(format string, args ...any) {
	if l := current(); l != nil {
		l.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...any) {
	if l := current(); l != nil {
		l.log("ERROR", format, args...)
	}
}

// Debug logs a debug message when debug output was requested.
func Debug(format string, args ...any) {
	if l := current(); l != nil && l.debug {
		l.log("DEBUG", format, args...)
	}
}

func (l *Logger) log(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	_ = l.fileLogger.Output(3, fmt.Sprintf("[%s] %s", level, message))
}

// Close closes the log file and disables logging.
func Close() error {
	instMu.Lock()
	l := instance
	instance = nil
	instMu.Unlock()

	if l == nil || l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

// SetOutput redirects the global logger; with no logger yet it installs one
// writing to w. Used by tests.
func SetOutput(w io.Writer, debug bool) {
	instMu.Lock()
	defer instMu.Unlock()
	if instance == nil {
		instance = &Logger{fileLogger: log.New(w, "", 0), debug: debug}
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.fileLogger.SetOutput(w)
	instance.debug = debug
}
