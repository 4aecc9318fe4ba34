package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/deppfellow/export-geoconfirmed/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
)

// HoursParam is the name of the only query parameter.
const HoursParam = "hours"

// eventsQueryTemplate selects every event ingested in the last @hours hours.
// The single %s is the backtick-quoted table id; it never carries request input.
const eventsQueryTemplate = `
	SELECT
		id,
		CAST(date AS STRING) AS date,
		CAST(date_created AS STRING) AS date_created,
		description,
		longitude,
		latitude,
		original_source,
		geolocation,
		origin,
		tweeted,
		eor_tracking,
		plus_code,
		ingested_at
	FROM
		` + "`%s`" + `
	WHERE
		ingested_at >= TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL @` + HoursParam + ` HOUR)
	ORDER BY
		ingested_at DESC
`

// isoFormat and isoFormatMicro render timestamps the way the export has
// always returned them: microseconds only when non-zero, numeric offset.
const (
	isoFormat      = "2006-01-02T15:04:05-07:00"
	isoFormatMicro = "2006-01-02T15:04:05.000000-07:00"
)

// eventRow mirrors the SELECT list. Every column may be NULL.
type eventRow struct {
	ID             bigquery.NullString    `bigquery:"id"`
	Date           bigquery.NullString    `bigquery:"date"`
	DateCreated    bigquery.NullString    `bigquery:"date_created"`
	Description    bigquery.NullString    `bigquery:"description"`
	Longitude      bigquery.NullFloat64   `bigquery:"longitude"`
	Latitude       bigquery.NullFloat64   `bigquery:"latitude"`
	OriginalSource bigquery.NullString    `bigquery:"original_source"`
	Geolocation    bigquery.NullString    `bigquery:"geolocation"`
	Origin         bigquery.NullString    `bigquery:"origin"`
	Tweeted        bigquery.NullBool      `bigquery:"tweeted"`
	EORTracking    bigquery.NullString    `bigquery:"eor_tracking"`
	PlusCode       bigquery.NullString    `bigquery:"plus_code"`
	IngestedAt     bigquery.NullTimestamp `bigquery:"ingested_at"`
}

// EventsRepository runs the export query against one table.
type EventsRepository struct {
	client *bigquery.Client
	query  string
	log    *zerolog.Logger
}

// NewEventsRepository builds a repository reading from tableID
// (`project.dataset.table`, already validated by config).
func NewEventsRepository(client *bigquery.Client, tableID string, logger *zerolog.Logger) *EventsRepository {
	return &EventsRepository{
		client: client,
		query:  buildEventsQuery(tableID),
		log:    logger,
	}
}

func buildEventsQuery(tableID string) string {
	return fmt.Sprintf(eventsQueryTemplate, tableID)
}

func eventsQueryParameters(hours int) []bigquery.QueryParameter {
	return []bigquery.QueryParameter{
		{Name: HoursParam, Value: int64(hours)},
	}
}

func (r *EventsRepository) newQuery(hours int) *bigquery.Query {
	q := r.client.Query(r.query)
	q.Parameters = eventsQueryParameters(hours)
	return q
}

// ListRecent returns the events ingested in the last hours hours, newest first.
//
// The result is never nil; no matching rows yields an empty slice.
func (r *EventsRepository) ListRecent(ctx context.Context, hours int) ([]model.Event, error) {
	it, err := r.newQuery(hours).Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run events query")
	}

	events := []model.Event{}
	for {
		var row eventRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read event row")
		}
		events = append(events, toEvent(row))
	}

	r.log.Debug().
		Int("hours", hours).
		Uint64("total_rows", it.TotalRows).
		Msg("events query finished")

	return events, nil
}

// DryRun validates the export query (table access, schema, syntax)
// without reading any data.
func (r *EventsRepository) DryRun(ctx context.Context) error {
	q := r.newQuery(1)
	q.DryRun = true

	job, err := q.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to dry-run events query")
	}

	if status := job.LastStatus(); status != nil && status.Err() != nil {
		return errors.Wrap(status.Err(), "events query dry-run failed")
	}

	return nil
}

// toEvent converts a warehouse row into the API record. It is total:
// every column maps to exactly one field, NULL maps to nil.
func toEvent(row eventRow) model.Event {
	return model.Event{
		ID:             nullString(row.ID),
		Date:           nullString(row.Date),
		DateCreated:    nullString(row.DateCreated),
		Description:    nullString(row.Description),
		Longitude:      nullFloat(row.Longitude),
		Latitude:       nullFloat(row.Latitude),
		OriginalSource: nullString(row.OriginalSource),
		Geolocation:    nullString(row.Geolocation),
		Origin:         nullString(row.Origin),
		Tweeted:        nullBool(row.Tweeted),
		EORTracking:    nullString(row.EORTracking),
		PlusCode:       nullString(row.PlusCode),
		IngestedAt:     nullTimestamp(row.IngestedAt),
	}
}

func nullString(v bigquery.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.StringVal
	return &s
}

func nullFloat(v bigquery.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullBool(v bigquery.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func nullTimestamp(v bigquery.NullTimestamp) *string {
	if !v.Valid {
		return nil
	}
	s := FormatISO(v.Timestamp)
	return &s
}

// FormatISO renders t in UTC as ISO-8601 with a numeric offset.
func FormatISO(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoFormat)
	}
	return t.Format(isoFormatMicro)
}
