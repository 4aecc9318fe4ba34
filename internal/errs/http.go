package errs

import "strings"

// HTTPError is the error type written to API clients.
//
// It implements the `error` interface via Error() and serializes to
// exactly one field:
//
//	{ "error": "Missing 'hours' query parameter" }
//
// Code, Kind and Status drive the response and the logs but stay out of
// the body.
type HTTPError struct {
	Code    string `json:"-"`
	Kind    Kind   `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
