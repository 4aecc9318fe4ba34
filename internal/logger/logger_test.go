package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/export-geoconfirmed/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string) *config.Config {
	return &config.Config{
		ServiceName: "export-geoconfirmed",
		ProjectID:   "soldier-tracker",
		Env:         "production",
		Logging:     config.LoggingConfig{Level: level, Format: "json"},
	}
}

func TestNewWithWriterUsesCloudLoggingFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(testConfig("info"), &buf)

	log.Warn().Msg("Validation error")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["severity"])
	assert.Equal(t, "Validation error", entry["message"])
	assert.Equal(t, "export-geoconfirmed", entry["service"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(testConfig("warn"), &buf)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Error().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestWithTraceContext(t *testing.T) {
	tests := []struct {
		desc   string
		header string
		want   string
	}{
		{desc: "full header", header: "105445aa7843bc8bf206b12000100000/1;o=1", want: "projects/soldier-tracker/traces/105445aa7843bc8bf206b12000100000"},
		{desc: "trace only", header: "abc123", want: "projects/soldier-tracker/traces/abc123"},
		{desc: "empty", header: "", want: ""},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			var buf bytes.Buffer
			log := WithTraceContext(NewWithWriter(testConfig("info"), &buf), "soldier-tracker", test.header)
			log.Info().Msg("x")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			if test.want == "" {
				assert.NotContains(t, entry, "logging.googleapis.com/trace")
				return
			}
			assert.Equal(t, test.want, entry["logging.googleapis.com/trace"])
		})
	}
}
