package middleware

import (
	"net/http"

	"github.com/deppfellow/export-geoconfirmed/internal/bqerr"
	"github.com/deppfellow/export-geoconfirmed/internal/errs"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// statusFromError returns the status a request will end with.
//
// When a handler returns an error, Echo has not written the response yet;
// GlobalErrorHandler will. Derive the status from the error so access logs
// and metrics don't record 200 for a failed request.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func statusFromError(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	}
	return http.StatusInternalServerError
}

// RequestLogger emits one "API" log line per request, with severity based
// on the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:          true,
		LogStatus:       true,
		LogError:        true,
		LogLatency:      true,
		LogResponseSize: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				statusCode = statusFromError(c, v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error()
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Int64("response_size", v.ResponseSize).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors for GlobalErrorHandler, so a
// panic still answers with the generic 500 body.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	})
}

// GlobalErrorHandler is the final error funnel for the entire router.
//
// Every error ends up here exactly once:
//   - *errs.HTTPError with a client Kind: logged at warn, message returned.
//   - *echo.HTTPError below 500 (e.g. 404, 405): status kept, status text returned.
//   - anything else: logged at error with its stack, generic 500 returned.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	logger := GetLogger(c)

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		// Already shaped for the client.

	case errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError:
		httpErr = &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: http.StatusText(echoErr.Code),
			Status:  echoErr.Code,
		}

	default:
		httpErr = errs.NewInternalServerError()
	}

	switch {
	case httpErr.Kind.IsClientError():
		logger.Warn().
			Str("error_kind", string(httpErr.Kind)).
			Int("status", httpErr.Status).
			Msgf("Validation error: %s", httpErr.Message)

	case httpErr.Status < http.StatusInternalServerError:
		logger.Warn().
			Err(err).
			Int("status", httpErr.Status).
			Msgf("Request error: %s", httpErr.Message)

	default:
		e := logger.Error().Stack().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code)

		upstream := bqerr.Classify(err)
		e = e.Str("upstream_category", string(upstream.Code))
		if upstream.HTTPCode != 0 {
			e = e.Int("upstream_code", upstream.HTTPCode).
				Str("upstream_reason", upstream.Reason)
		}

		e.Msgf("Unhandled error: %v", err)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}
