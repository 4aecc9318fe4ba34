// Package config manages environment variables.
//
// It reads variables from an optional `project.env` file and the
// process environment, loads them into structured Go types, applies
// defaults and validates that required values are present so the
// function fails fast on bad or missing config.
//
// Responsibilities:
//   - Load environment variables (optionally from `project.env`).
//   - Map env vars into a structured Go config (structs).
//   - Apply defaults for optional values (dataset, table, logging).
//   - Validate required values and identifier formats.
package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvFile is the dotenv file read at startup when present.
// Values already set in the process environment win over the file.
const EnvFile = "project.env"

/*
	Key idea in this file:
	- Env vars are read without a prefix, matching the deployment manifest
	  (SERVICE_NAME, PROJECT_ID, ...).
	- Keys are lowercased.
	- BQ_* and LOG_* are nested under "bigquery." and "logging." by the
	  mapping function, e.g. BQ_TABLE -> bigquery.table -> Config.BigQuery.Table
*/

// Config is the root configuration object for the function.
//
// It is built once per process by Load and passed by pointer to
// everything that needs it. Nothing in this package keeps a global copy.
type Config struct {
	ServiceName                string `koanf:"service_name" validate:"required"`
	ProjectID                  string `koanf:"project_id" validate:"required,gcp_project"`
	Region                     string `koanf:"region" validate:"required"`
	Runtime                    string `koanf:"runtime" validate:"required"`
	Timeout                    int    `koanf:"timeout" validate:"required,gt=0"`
	RuntimeServiceAccountEmail string `koanf:"runtime_service_account_email" validate:"required,email"`

	// Env tags logs and switches local-only behavior (console logs).
	Env string `koanf:"env" default:"production" validate:"required"`

	// Port is only used by the local development server.
	Port string `koanf:"port" default:"8080" validate:"required,numeric"`

	BigQuery BigQueryConfig `koanf:"bigquery"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// BigQueryConfig names the table the export reads from.
type BigQueryConfig struct {
	Dataset string `koanf:"dataset" default:"geolocations" validate:"required,bq_identifier"`
	Table   string `koanf:"table" default:"geoconfirmed_events" validate:"required,bq_identifier"`

	// Location is the job location. Empty lets BigQuery infer it from the dataset.
	Location string `koanf:"location"`
}

var (
	projectPattern    = regexp.MustCompile(`^[a-z][a-z0-9:.\-]*[a-z0-9]$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// envKey converts a raw env var name into a koanf key.
//
// Example:
//
//	BQ_DATASET -> bigquery.dataset
//	LOG_LEVEL  -> logging.level
//	PROJECT_ID -> project_id
func envKey(s string) string {
	key := strings.ToLower(s)
	switch {
	case strings.HasPrefix(key, "bq_"):
		return "bigquery." + strings.TrimPrefix(key, "bq_")
	case strings.HasPrefix(key, "log_"):
		return "logging." + strings.TrimPrefix(key, "log_")
	}
	return key
}

// newValidator returns a validator with the identifier rules registered.
func newValidator() *validator.Validate {
	validate := validator.New()

	// Registration only fails on empty tags or nil funcs.
	_ = validate.RegisterValidation("gcp_project", func(fl validator.FieldLevel) bool {
		return projectPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("bq_identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})

	return validate
}

// Load builds the Config from `project.env` and the process environment.
//
// Behavior summary:
//   - Loads `project.env` if it exists (missing file is not an error)
//   - Applies `default:"..."` struct tags
//   - Loads all env vars and maps them into koanf keys
//   - Unmarshals into Config
//   - Validates struct tags and the logging block
//
// Unlike a Fatal-on-error loader it returns the error, so the function
// entry point can answer 500 instead of crashing the instance.
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "could not read %s", EnvFile)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "could not apply config defaults")
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if err := cfg.Logging.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid logging config")
	}

	return cfg, nil
}

// TableID returns the fully qualified `project.dataset.table` identifier.
//
// Every part has passed identifier validation in Load, so the result is
// safe to place between backticks in a query.
func (c *Config) TableID() string {
	return c.ProjectID + "." + c.BigQuery.Dataset + "." + c.BigQuery.Table
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Env == "local"
}
