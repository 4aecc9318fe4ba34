package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVICE_NAME", "export-geoconfirmed")
	t.Setenv("PROJECT_ID", "soldier-tracker")
	t.Setenv("REGION", "europe-west1")
	t.Setenv("RUNTIME", "go125")
	t.Setenv("TIMEOUT", "540")
	t.Setenv("RUNTIME_SERVICE_ACCOUNT_EMAIL", "export@soldier-tracker.iam.gserviceaccount.com")
	for _, key := range []string{"BQ_DATASET", "BQ_TABLE", "BQ_LOCATION", "LOG_LEVEL", "LOG_FORMAT", "ENV", "PORT"} {
		unsetEnv(t, key)
	}
}

// unsetEnv removes key for the rest of the test; t.Setenv restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "export-geoconfirmed", cfg.ServiceName)
	assert.Equal(t, 540, cfg.Timeout)
	assert.Equal(t, "geolocations", cfg.BigQuery.Dataset)
	assert.Equal(t, "geoconfirmed_events", cfg.BigQuery.Table)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "soldier-tracker.geolocations.geoconfirmed_events", cfg.TableID())
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BQ_DATASET", "archive")
	t.Setenv("BQ_TABLE", "events_2024")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "soldier-tracker.archive.events_2024", cfg.TableID())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		desc  string
		key   string
		value string
	}{
		{desc: "missing service name", key: "SERVICE_NAME", value: ""},
		{desc: "non-numeric timeout", key: "TIMEOUT", value: "soon"},
		{desc: "invalid email", key: "RUNTIME_SERVICE_ACCOUNT_EMAIL", value: "not-an-email"},
		{desc: "table with backtick", key: "BQ_TABLE", value: "events` WHERE 1=1 --"},
		{desc: "dataset with dot", key: "BQ_DATASET", value: "other.dataset"},
		{desc: "project with space", key: "PROJECT_ID", value: "soldier tracker"},
		{desc: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{desc: "unknown log format", key: "LOG_FORMAT", value: "xml"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(test.key, test.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "bigquery.dataset", envKey("BQ_DATASET"))
	assert.Equal(t, "logging.format", envKey("LOG_FORMAT"))
	assert.Equal(t, "runtime_service_account_email", envKey("RUNTIME_SERVICE_ACCOUNT_EMAIL"))
}

func TestLoggingConfigValidate(t *testing.T) {
	tests := []struct {
		desc    string
		cfg     LoggingConfig
		wantErr bool
	}{
		{desc: "sanity", cfg: LoggingConfig{Level: "info", Format: "json"}},
		{desc: "console", cfg: LoggingConfig{Level: "debug", Format: "console"}},
		{desc: "empty level", cfg: LoggingConfig{Level: "", Format: "json"}, wantErr: true},
		{desc: "bad format", cfg: LoggingConfig{Level: "warn", Format: "text"}, wantErr: true},
	}
	for _, test := range tests {
		err := test.cfg.Validate()
		assert.Equal(t, test.wantErr, err != nil, test.desc)
	}
}
