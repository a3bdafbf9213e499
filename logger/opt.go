package logger

import "log"

// An OptFn is a functional option configuring a ValueLogger when constructing a new one.
type OptFn func(*ValueLogger)

// WithLevel sets the log level ValueLogger uses.
func WithLevel(level LogLevel) OptFn {
	return func(l *ValueLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger ValueLogger uses.
func WithLogger(log *log.Logger) OptFn {
	return func(l *ValueLogger) {
		l.l = log
	}
}
