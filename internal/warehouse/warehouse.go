// Package warehouse owns the connection to BigQuery.
//
// It handles:
//   - creating the BigQuery client for the configured project
//   - pinning the job location when one is configured
//   - closing the client on shutdown
//
// Credentials come from Application Default Credentials: the runtime
// service account on Cloud Functions, `gcloud auth application-default
// login` on a developer machine.
package warehouse

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/deppfellow/export-geoconfirmed/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// Warehouse wraps the BigQuery client and a logger.
//
// Client is safe for concurrent use and is shared by every request the
// process serves.
type Warehouse struct {
	Client *bigquery.Client
	log    *zerolog.Logger
}

// New creates a BigQuery client for cfg.ProjectID.
//
// Client creation does not contact BigQuery, so a bad credential or a
// missing table only shows up on the first query (or the health check).
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Warehouse, error) {
	client, err := bigquery.NewClient(ctx, cfg.ProjectID, option.WithUserAgent(cfg.ServiceName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bigquery client")
	}

	if cfg.BigQuery.Location != "" {
		client.Location = cfg.BigQuery.Location
	}

	logger.Info().
		Str("project_id", cfg.ProjectID).
		Str("table", cfg.TableID()).
		Msg("created bigquery client")

	return &Warehouse{
		Client: client,
		log:    logger,
	}, nil
}

// Close releases the client's connections.
func (w *Warehouse) Close() error {
	w.log.Info().Msg("closing bigquery client")
	return w.Client.Close()
}
