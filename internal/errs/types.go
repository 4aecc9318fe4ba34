package errs

import (
	"net/http"
)

// InternalServerErrorMessage is the only message a 500 ever carries.
const InternalServerErrorMessage = "Internal server error"

// NewBadRequestError creates a 400 Bad Request HTTPError for a
// client-caused failure of the given kind.
func NewBadRequestError(message string, kind Kind) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Kind:    kind,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is fixed; callers log the real cause themselves.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Kind:    KindUpstreamFailure,
		Message: InternalServerErrorMessage,
		Status:  http.StatusInternalServerError,
	}
}
