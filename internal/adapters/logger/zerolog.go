package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologLogger implements the ports.Logger interface using rs/zerolog.
// It emits structured JSON, suitable for log aggregation.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a structured JSON logger writing to os.Stderr.
func NewZerologLogger(level LogLevel) *ZerologLogger {
	return NewZerologLoggerTo(os.Stderr, level)
}

// NewZerologLoggerTo creates a structured JSON logger writing to w.
func NewZerologLoggerTo(w io.Writer, level LogLevel) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{logger: zl}
}

func toZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func withFields(evt *zerolog.Event, fields []map[string]interface{}) *zerolog.Event {
	if len(fields) > 0 && fields[0] != nil {
		evt = evt.Fields(fields[0])
	}
	return evt
}

// Debug logs a message at Debug level.
func (l *ZerologLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at Info level.
func (l *ZerologLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at Warning level.
func (l *ZerologLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

// Error logs an error message at Error level.
func (l *ZerologLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	withFields(l.logger.Error().Err(err), fields).Msg(msg)
}
