package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

// requestIDKey is the context key for HTTP request IDs.
const requestIDKey contextKey = "request_id"

// log is the global logger instance, usable before InitLogging runs.
var log = newLogger(os.Stdout, zerolog.InfoLevel)

// InitLogging configures the global logger. An unparseable level falls back
// to info. A non-empty filePath duplicates output into that file; failure to
// open it keeps console-only logging.
func InitLogging(filePath, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn().Msgf("failed to open log file %s: %v", filePath, err)
		} else {
			w = zerolog.MultiLevelWriter(w, file)
		}
	}
	log = newLogger(w, lvl)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// WithRequestID returns a context carrying the request id that the *Log
// helpers attach to every entry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom retrieves the request id from ctx, or "" if absent.
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func DebugLog(ctx context.Context, format string, v ...interface{}) {
	logEvent(ctx, log.Debug(), format, v)
}

func InfoLog(ctx context.Context, format string, v ...interface{}) {
	logEvent(ctx, log.Info(), format, v)
}

func WarnLog(ctx context.Context, format string, v ...interface{}) {
	logEvent(ctx, log.Warn(), format, v)
}

func ErrorLog(ctx context.Context, format string, v ...interface{}) {
	logEvent(ctx, log.Error(), format, v)
}

// logEvent emits the entry. Callers may pass a pre-formatted message with no
// varargs; the format string is only interpreted when varargs are present.
func logEvent(ctx context.Context, e *zerolog.Event, format string, v []interface{}) {
	if id := RequestIDFrom(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	if len(v) == 0 {
		e.Msg(format)
		return
	}
	e.Msg(fmt.Sprintf(format, v...))
}
