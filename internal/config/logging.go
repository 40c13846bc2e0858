package config

import (
	"log/slog"

	"git.home.luguber.info/inful/symdoc/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewEnumNormalizer("log level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// NormalizeLogLevel maps raw onto a LogLevel; unknown and empty values
// become info.
func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// ParseLogLevel is NormalizeLogLevel for user input that must be valid.
func ParseLogLevel(raw string) (LogLevel, error) {
	return logLevelNormalizer.NormalizeWithValidation(raw)
}

// Slog converts the level for use with a slog handler.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatText   LogFormat = "text"
	LogFormatJSON   LogFormat = "json"
	LogFormatPretty LogFormat = "pretty"
)

var logFormatNormalizer = normalization.NewEnumNormalizer("log format", map[string]LogFormat{
	"text":    LogFormatText,
	"json":    LogFormatJSON,
	"pretty":  LogFormatPretty,
	"console": LogFormatPretty,
}, LogFormatText)

// NormalizeLogFormat maps raw onto a LogFormat; unknown and empty values
// become text.
func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// ParseLogFormat is NormalizeLogFormat for user input that must be valid.
func ParseLogFormat(raw string) (LogFormat, error) {
	return logFormatNormalizer.NormalizeWithValidation(raw)
}
