// Package errs defines the error taxonomy of the export endpoint and the
// HTTP error type every failure is funnelled into.
//
// Client-caused failures (missing or invalid `hours`) become 400 with a
// specific message. Everything else becomes a 500 with a fixed, generic
// message; the cause is only ever logged.
package errs

// Kind classifies a failure so callers can branch without matching on
// message text.
type Kind string

const (
	KindMissingParameter Kind = "MISSING_PARAMETER"
	KindNotAnInteger     Kind = "NOT_AN_INTEGER"
	KindTooSmall         Kind = "TOO_SMALL"
	KindTooLarge         Kind = "TOO_LARGE"
	KindUpstreamFailure  Kind = "UPSTREAM_FAILURE"
)

// IsClientError reports whether k is caused by the caller's input.
func (k Kind) IsClientError() bool {
	switch k {
	case KindMissingParameter, KindNotAnInteger, KindTooSmall, KindTooLarge:
		return true
	}
	return false
}
