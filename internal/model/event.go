// Package model holds the records the export returns.
package model

// Event is one GeoConfirmed geolocation as stored in the warehouse.
//
// Nullable columns are pointers and serialize as JSON null. Date and
// DateCreated are cast to STRING by the query; IngestedAt is rendered as
// ISO-8601 ("2024-05-01T12:30:00.123456+00:00").
type Event struct {
	ID             *string  `json:"id"`
	Date           *string  `json:"date"`
	DateCreated    *string  `json:"date_created"`
	Description    *string  `json:"description"`
	Longitude      *float64 `json:"longitude"`
	Latitude       *float64 `json:"latitude"`
	OriginalSource *string  `json:"original_source"`
	Geolocation    *string  `json:"geolocation"`
	Origin         *string  `json:"origin"`
	Tweeted        *bool    `json:"tweeted"`
	EORTracking    *string  `json:"eor_tracking"`
	PlusCode       *string  `json:"plus_code"`
	IngestedAt     *string  `json:"ingested_at"`
}
