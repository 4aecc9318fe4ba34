package bqerr

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// Code is the category of a warehouse failure.
type Code string

const (
	NotFound         Code = "NOT_FOUND"
	PermissionDenied Code = "PERMISSION_DENIED"
	InvalidQuery     Code = "INVALID_QUERY"
	RateLimited      Code = "RATE_LIMITED"
	Unavailable      Code = "UNAVAILABLE"
	Canceled         Code = "CANCELED"
	DeadlineExceeded Code = "DEADLINE_EXCEEDED"
	Other            Code = "OTHER"
)

// Error is the classified view of a warehouse error.
type Error struct {
	Code     Code
	HTTPCode int    // 0 when the error did not come from the API
	Reason   string // first googleapi reason, e.g. "notFound"
	Message  string
}

// reasonCodes maps BigQuery error reasons.
// Reference: https://cloud.google.com/bigquery/docs/error-messages
var reasonCodes = map[string]Code{
	"notFound":          NotFound,
	"accessDenied":      PermissionDenied,
	"invalidQuery":      InvalidQuery,
	"invalid":           InvalidQuery,
	"rateLimitExceeded": RateLimited,
	"quotaExceeded":     RateLimited,
	"backendError":      Unavailable,
	"internalError":     Unavailable,
}

// Classify walks err's chain and returns its category.
//
// Behavior:
//   - context cancellation and deadlines map to Canceled / DeadlineExceeded
//   - a *googleapi.Error maps by reason first, then by HTTP status
//   - anything else is Other
func Classify(err error) *Error {
	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Code: Canceled, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Code: DeadlineExceeded, Message: err.Error()}
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return &Error{Code: Other, Message: err.Error()}
	}

	classified := &Error{
		Code:     MapStatus(apiErr.Code),
		HTTPCode: apiErr.Code,
		Message:  apiErr.Message,
	}

	if len(apiErr.Errors) > 0 {
		classified.Reason = apiErr.Errors[0].Reason
		if code, ok := reasonCodes[classified.Reason]; ok {
			classified.Code = code
		}
	}

	return classified
}

// MapStatus maps an HTTP status code returned by the API.
func MapStatus(status int) Code {
	switch status {
	case http.StatusNotFound:
		return NotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return PermissionDenied
	case http.StatusBadRequest:
		return InvalidQuery
	case http.StatusTooManyRequests:
		return RateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return Unavailable
	}
	return Other
}

// ErrCode reports the category of err, Other for nil.
func ErrCode(err error) Code {
	if err == nil {
		return Other
	}
	return Classify(err).Code
}
