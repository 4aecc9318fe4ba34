package validation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/export-geoconfirmed/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		desc   string
		method string
		target string
		kind   errs.Kind
		hours  int
	}{
		{desc: "missing", method: http.MethodGet, target: "/", kind: errs.KindMissingParameter},
		{desc: "empty", method: http.MethodGet, target: "/?hours=", kind: errs.KindMissingParameter},
		{desc: "not an integer", method: http.MethodGet, target: "/?hours=invalid", kind: errs.KindNotAnInteger},
		{desc: "too small", method: http.MethodGet, target: "/?hours=0", kind: errs.KindTooSmall},
		{desc: "too large", method: http.MethodGet, target: "/?hours=8761", kind: errs.KindTooLarge},
		{desc: "valid get", method: http.MethodGet, target: "/?hours=24", hours: 24},
		{desc: "valid post", method: http.MethodPost, target: "/?hours=6", hours: 6},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			req := &ExportEventsRequest{}
			err := BindAndValidate(newContext(test.method, test.target), req)

			if test.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, test.hours, req.LookbackHours())
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, test.kind, httpErr.Kind)
		})
	}
}
