package repository

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventsQuery(t *testing.T) {
	query := buildEventsQuery("soldier-tracker.geolocations.geoconfirmed_events")

	assert.Contains(t, query, "FROM\n\t\t`soldier-tracker.geolocations.geoconfirmed_events`")
	assert.Contains(t, query, "INTERVAL @hours HOUR")
	assert.Contains(t, query, "ORDER BY\n\t\tingested_at DESC")
	assert.Equal(t, 1, strings.Count(query, "@"))
}

func TestEventsQueryParameters(t *testing.T) {
	params := eventsQueryParameters(24)

	require.Len(t, params, 1)
	assert.Equal(t, "hours", params[0].Name)
	assert.Equal(t, int64(24), params[0].Value)
}

func TestFormatISO(t *testing.T) {
	tests := []struct {
		desc string
		in   time.Time
		want string
	}{
		{
			desc: "whole seconds",
			in:   time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
			want: "2024-05-01T12:30:00+00:00",
		},
		{
			desc: "microseconds",
			in:   time.Date(2024, 5, 1, 12, 30, 0, 123456000, time.UTC),
			want: "2024-05-01T12:30:00.123456+00:00",
		},
		{
			desc: "trailing zero micros kept",
			in:   time.Date(2024, 5, 1, 12, 30, 0, 100000000, time.UTC),
			want: "2024-05-01T12:30:00.100000+00:00",
		},
		{
			desc: "non-UTC input normalized",
			in:   time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("CEST", 2*60*60)),
			want: "2024-05-01T12:30:00+00:00",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, FormatISO(test.in), test.desc)
	}
}

func TestToEvent(t *testing.T) {
	row := eventRow{
		ID:             bigquery.NullString{StringVal: "a1b2", Valid: true},
		Date:           bigquery.NullString{StringVal: "2024-05-01", Valid: true},
		DateCreated:    bigquery.NullString{StringVal: "2024-05-01 10:00:00+00", Valid: true},
		Description:    bigquery.NullString{StringVal: "Destroyed T-72", Valid: true},
		Longitude:      bigquery.NullFloat64{Float64: 37.8, Valid: true},
		Latitude:       bigquery.NullFloat64{Float64: 48.1, Valid: true},
		OriginalSource: bigquery.NullString{StringVal: "https://t.me/example/1", Valid: true},
		Geolocation:    bigquery.NullString{StringVal: "https://x.com/example/2", Valid: true},
		Origin:         bigquery.NullString{StringVal: "RU", Valid: true},
		Tweeted:        bigquery.NullBool{Bool: true, Valid: true},
		EORTracking:    bigquery.NullString{},
		PlusCode:       bigquery.NullString{StringVal: "8GX4+22", Valid: true},
		IngestedAt:     bigquery.NullTimestamp{Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), Valid: true},
	}

	body, err := json.Marshal(toEvent(row))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "a1b2",
		"date": "2024-05-01",
		"date_created": "2024-05-01 10:00:00+00",
		"description": "Destroyed T-72",
		"longitude": 37.8,
		"latitude": 48.1,
		"original_source": "https://t.me/example/1",
		"geolocation": "https://x.com/example/2",
		"origin": "RU",
		"tweeted": true,
		"eor_tracking": null,
		"plus_code": "8GX4+22",
		"ingested_at": "2024-05-01T12:00:00+00:00"
	}`, string(body))
}

func TestToEventAllNull(t *testing.T) {
	body, err := json.Marshal(toEvent(eventRow{}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Len(t, fields, 13)
	for name, value := range fields {
		assert.Nil(t, value, name)
	}
}
