package internal

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// ParseLogLevel maps ERROR/WARN/INFO/DEBUG/TRACE to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	case "TRACE":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Logger provides leveled logging on top of a zap sugared logger
type Logger struct {
	level LogLevel
	sugar *zap.SugaredLogger
}

// NewLogger creates a console logger writing to stderr at the specified level
func NewLogger(level LogLevel) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{level: level, sugar: z.Sugar()}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{level: LogLevelError, sugar: zap.NewNop().Sugar()}
}

// NewLoggerFromZap wraps an existing zap logger, e.g. an observer core in tests
func NewLoggerFromZap(z *zap.Logger, level LogLevel) *Logger {
	return &Logger{level: level, sugar: z.Sugar()}
}

// With returns a child logger carrying structured key/value fields
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{level: l.level, sugar: l.sugar.With(keysAndValues...)}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		l.sugar.Errorf(format, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		l.sugar.Warnf(format, args...)
	}
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.sugar.Infof(format, args...)
	}
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.sugar.Debugf(format, args...)
	}
}

// Trace logs trace messages; zap has no trace level so these go out as debug
func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LogLevelTrace {
		l.sugar.Debugf("[TRACE] "+format, args...)
	}
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	return l.level
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
