/*
Package logger provides optional, leveled transition logging for a bounded.Value
by defining the required behavior in [Logger] and providing an implementation
of it with [ValueLogger].

An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [ValueLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ValueLogger.Warn] and [*ValueLogger.Error] produce messages.

Log messages emitted by [ValueLogger] are composed of a timestamp,
the log level, the call site, and the message:

	2026/08/26 15:55:21 [DEBUG] bounded/bounded.go:143 'state set to MID'
*/
package logger
