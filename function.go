// Package exportgeoconfirmed is the Cloud Functions entry point of the
// GeoConfirmed export.
//
// The function answers `?hours=N` with the events ingested in the last N
// hours (1 to 8760) as a JSON array.
package exportgeoconfirmed

import (
	"context"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/deppfellow/export-geoconfirmed/internal/app"
	"github.com/deppfellow/export-geoconfirmed/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// EntryPoint is the name the function is deployed under.
const EntryPoint = "ExportGeoconfirmed"

func init() {
	functions.HTTP(EntryPoint, ExportGeoconfirmed)
}

var (
	mu     sync.Mutex
	router *echo.Echo
)

// handler returns the process-wide router, building it on first use.
// A failed build is not cached, so the next invocation tries again.
func handler() (*echo.Echo, error) {
	mu.Lock()
	defer mu.Unlock()

	if router != nil {
		return router, nil
	}

	a, err := app.New(context.Background())
	if err != nil {
		return nil, err
	}

	router = a.Router
	return router, nil
}

// ExportGeoconfirmed serves one invocation.
func ExportGeoconfirmed(w http.ResponseWriter, r *http.Request) {
	h, err := handler()
	if err != nil {
		log.Error().Stack().Err(err).Msgf("Unhandled error: %v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + errs.InternalServerErrorMessage + `"}`))
		return
	}

	h.ServeHTTP(w, r)
}
