package validation

// ExportEventsRequest is the query payload of the export endpoint.
type ExportEventsRequest struct {
	Hours string `query:"hours"`

	hours int
}

// Validate checks that `hours` is present and in range, and keeps the
// parsed value for LookbackHours.
func (r *ExportEventsRequest) Validate() error {
	if r.Hours == "" {
		return ErrMissingHours
	}

	hours, err := ParseHours(r.Hours)
	if err != nil {
		return err
	}

	r.hours = hours
	return nil
}

// LookbackHours returns the validated window. It is zero until Validate succeeds.
func (r *ExportEventsRequest) LookbackHours() int {
	return r.hours
}
