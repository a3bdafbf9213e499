package logger

import (
	"log"
	"os"
	"path"
	"runtime"

	"github.com/fatih/color"
)

// knownFrames scrolls past ValueLogger's own frames to reach the call site.
const knownFrames = 2

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)

	LogLevel() LogLevel
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// ValueLogger implements Logger using log.
type ValueLogger struct {
	l  *log.Logger
	ll LogLevel
}

// New constructs a ValueLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default log level is INFO.
func New(opts ...OptFn) Logger {
	l := &ValueLogger{
		l:  log.New(os.Stdout, "", log.LstdFlags),
		ll: LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Debug writes a debug log.
func (l *ValueLogger) Debug(msg string) {
	if l.ll > LogLevelDebug {
		return
	}

	l.log(color.WhiteString, LogLevelDebug, msg)
}

// Info writes an info log.
func (l *ValueLogger) Info(msg string) {
	if l.ll > LogLevelInfo {
		return
	}

	l.log(color.BlueString, LogLevelInfo, msg)
}

// Warn writes a warning log.
func (l *ValueLogger) Warn(msg string) {
	if l.ll > LogLevelWarn {
		return
	}

	l.log(color.YellowString, LogLevelWarn, msg)
}

// Error writes an error log.
func (l *ValueLogger) Error(msg string) {
	if l.ll > LogLevelError {
		return
	}

	l.log(color.RedString, LogLevelError, msg)
}

// LogLevel returns the LogLevel set for the ValueLogger.
func (l *ValueLogger) LogLevel() LogLevel { return l.ll }

// log executes printing the log message, prefixed by its level and call site.
func (l *ValueLogger) log(colorizer func(string, ...any) string, level LogLevel, msg string) {
	_, file, line, _ := runtime.Caller(knownFrames)

	// print the file and the directory it is in
	// e.g., /home/dlk/my-project/main.go => my-project/main.go
	fullPath, file := path.Split(file)
	site := path.Base(fullPath) + string(os.PathSeparator) + file

	l.l.Println(colorizer("%s %s:%d '%s'", level, site, line, msg))
}
