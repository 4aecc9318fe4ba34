package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorBody(t *testing.T) {
	body, err := json.Marshal(NewInternalServerError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Internal server error"}`, string(body))

	body, err = json.Marshal(NewBadRequestError("hours must be at least 1", KindTooSmall))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "hours must be at least 1"}`, string(body))
}

func TestConstructors(t *testing.T) {
	bad := NewBadRequestError("Missing 'hours' query parameter", KindMissingParameter)
	assert.Equal(t, http.StatusBadRequest, bad.Status)
	assert.Equal(t, "BAD_REQUEST", bad.Code)
	assert.Equal(t, KindMissingParameter, bad.Kind)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, KindUpstreamFailure, internal.Kind)
}

func TestHTTPErrorAs(t *testing.T) {
	wrapped := errors.Wrap(NewBadRequestError("x", KindNotAnInteger), "binding request")

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, KindNotAnInteger, httpErr.Kind)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestKindIsClientError(t *testing.T) {
	for _, kind := range []Kind{KindMissingParameter, KindNotAnInteger, KindTooSmall, KindTooLarge} {
		assert.True(t, kind.IsClientError(), kind)
	}
	assert.False(t, KindUpstreamFailure.IsClientError())
}
