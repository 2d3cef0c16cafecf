package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugNameConstant            = "debug"
	logLevelInfoNameConstant             = "info"
	logLevelWarnNameConstant             = "warn"
	logLevelErrorNameConstant            = "error"
	logFormatStructuredNameConstant      = "structured"
	logFormatConsoleNameConstant         = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugNameConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoNameConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnNameConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorNameConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredNameConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleNameConstant)
)

// LoggerFactory builds the zap loggers behind the questionnaire commands.
// The console format keeps diagnostics readable while a client works through
// their questions interactively; the structured format emits production JSON
// for unattended runs.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and
// format. Values are matched case-insensitively, and blank values fall back to
// the interactive defaults (info level, console format).
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelError := factory.resolveLevel(requestedLogLevel)
	if levelError != nil {
		return nil, levelError
	}

	zapConfiguration, formatError := factory.resolveConfiguration(requestedLogFormat)
	if formatError != nil {
		return nil, formatError
	}

	zapConfiguration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	return zapConfiguration.Build()
}

func (factory *LoggerFactory) resolveLevel(requestedLogLevel LogLevel) (zapcore.Level, error) {
	switch factory.normalizeValue(string(requestedLogLevel)) {
	case "", string(LogLevelInfo):
		return zapcore.InfoLevel, nil
	case string(LogLevelDebug):
		return zapcore.DebugLevel, nil
	case string(LogLevelWarn):
		return zapcore.WarnLevel, nil
	case string(LogLevelError):
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}
}

func (factory *LoggerFactory) resolveConfiguration(requestedLogFormat LogFormat) (zap.Config, error) {
	switch factory.normalizeValue(string(requestedLogFormat)) {
	case "", string(LogFormatConsole):
		zapConfiguration := zap.NewDevelopmentConfig()
		zapConfiguration.DisableStacktrace = true
		return zapConfiguration, nil
	case string(LogFormatStructured):
		return zap.NewProductionConfig(), nil
	default:
		return zap.Config{}, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}
}

func (factory *LoggerFactory) normalizeValue(configuredValue string) string {
	return strings.ToLower(strings.TrimSpace(configuredValue))
}
