// Package logger configures the application's structured logging.
//
// It uses *ZeroLog* and emits JSON whose field names Cloud Logging
// understands (severity, message, timestamp), so log entries from the
// function land with the right level in the console without an agent.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// TraceHeader carries the GCP trace context on requests routed through
// Cloud Functions / Cloud Run: "TRACE_ID/SPAN_ID;o=TRACE_TRUE".
const TraceHeader = "X-Cloud-Trace-Context"

func init() {
	zerolog.LevelFieldName = "severity"
	zerolog.MessageFieldName = "message"
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// New builds the root logger from config, writing to stdout.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds the root logger writing to w.
//
// "console" format wraps w in a zerolog.ConsoleWriter for local use;
// anything else is plain JSON.
func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = w
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env).
		Logger()
}

// WithTraceContext adds the Cloud Logging trace field to logger, so
// request logs group under the invocation's trace in the console.
//
// header is the raw X-Cloud-Trace-Context value; an empty or malformed
// header returns logger unchanged.
func WithTraceContext(logger zerolog.Logger, projectID, header string) zerolog.Logger {
	traceID := traceIDFromHeader(header)
	if traceID == "" || projectID == "" {
		return logger
	}

	return logger.With().
		Str("logging.googleapis.com/trace", "projects/"+projectID+"/traces/"+traceID).
		Logger()
}

func traceIDFromHeader(header string) string {
	if i := strings.IndexAny(header, "/;"); i >= 0 {
		return header[:i]
	}
	return header
}
