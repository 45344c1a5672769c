package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the logger installed at startup
	globalLogger *ZapLogger
	// callerLogger is globalLogger with one frame skipped so the package
	// level helpers report their caller's location
	callerLogger *zap.Logger
	// fallback is built once for code paths that log before startup
	fallback *ZapLogger
	once     sync.Once
	mu       sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
	callerLogger = nil
	if logger != nil {
		callerLogger = logger.WithOptions(zap.AddCallerSkip(1))
	}
}

// GetGlobalLogger returns the global logger instance, falling back to a
// production logger if none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		fallback = &ZapLogger{Logger: defaultLogger}
	})
	return fallback
}

func helperLogger() *zap.Logger {
	mu.RLock()
	l := callerLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	return GetGlobalLogger().WithOptions(zap.AddCallerSkip(1))
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	helperLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	helperLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	helperLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	helperLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	helperLogger().Fatal(msg, fields...)
}
