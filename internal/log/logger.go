// Package log provides logging functionality to both console and file.
// Console output is plain text for the user; the file sink is a leveled
// logrus logger so diagnostics never corrupt the TUI.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// FileName is the log file created inside the log directory.
const FileName = "skillmatrix.log"

// Logger writes output to both console and a log file.
type Logger struct {
	file   *os.File
	writer io.Writer
	entry  *logrus.Entry
}

// New creates a new logger that writes to both console and a log file.
func New(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:   file,
		writer: io.MultiWriter(os.Stdout, file),
		entry:  logrus.NewEntry(newFileLogger(file)),
	}, nil
}

func newFileLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	setFormat(l, "text")
	return l
}

func setFormat(l *logrus.Logger, format string) {
	switch format {
	case "json":
		l.Formatter = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		l.Formatter = &logrus.TextFormatter{
			TimestampFormat:  time.RFC3339Nano,
			FullTimestamp:    true,
			DisableColors:    true,
			DisableQuote:     true,
			QuoteEmptyFields: true,
		}
	}
}

// Printf writes a formatted message to console and log file.
func (l *Logger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprint(l.writer, msg)
}

// Println writes a message to console and log file with a newline.
func (l *Logger) Println(args ...interface{}) {
	msg := fmt.Sprintln(args...)
	_, _ = fmt.Fprint(l.writer, msg)
}

// Errorf writes a formatted error message to stderr and an error entry to the log file.
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(os.Stderr, msg)
	l.entry.Error(msg)
}

// Entry exposes the file logger for leveled, structured records.
func (l *Logger) Entry() *logrus.Entry {
	return l.entry
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger *Logger

// fallback receives leveled records before Init, e.g. in tests.
var fallback = logrus.NewEntry(newFileLogger(io.Discard))

// Init initializes the global logger.
// Also redirects Go's standard log package to write to the log file,
// so stray log.Printf calls from libraries stay out of the TUI.
func Init(logDir string) error {
	logger, err := New(logDir)
	if err != nil {
		return err
	}
	globalLogger = logger

	stdlog.SetOutput(logger.file)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime)

	return nil
}

// SetLevel sets the level of the file sink ("debug", "info", "warn", ...).
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	entry().Logger.SetLevel(lvl)
	return nil
}

// SetFormat switches the file sink between "text" and "json".
func SetFormat(format string) {
	setFormat(entry().Logger, format)
}

func entry() *logrus.Entry {
	if globalLogger != nil {
		return globalLogger.entry
	}
	return fallback
}

// WithField returns a file-only entry carrying a field.
func WithField(key string, value interface{}) *logrus.Entry {
	return entry().WithField(key, value)
}

// Printf uses the global logger to print formatted output.
func Printf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Printf(format, args...)
	} else {
		fmt.Printf(format, args...)
	}
}

// Println uses the global logger to print output with newline.
func Println(args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Println(args...)
	} else {
		fmt.Println(args...)
	}
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugf writes a debug record to the log file only.
func Debugf(format string, args ...interface{}) {
	entry().Debugf(format, args...)
}

// Infof writes an info record to the log file only.
func Infof(format string, args ...interface{}) {
	entry().Infof(format, args...)
}

// Warnf writes a warning record to the log file only.
func Warnf(format string, args ...interface{}) {
	entry().Warnf(format, args...)
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		return err
	}
	return nil
}
