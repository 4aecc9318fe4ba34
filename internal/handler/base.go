package handler

import (
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/middleware"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/deppfellow/export-geoconfirmed/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler carries the shared dependencies every handler embeds.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it gets an already validated payload
// and returns the value to serialize, or an error for GlobalErrorHandler.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle adapts fn to echo:
//
//	bind + validate -> fn -> JSON with status
//
// newReq is called once per request so concurrent requests never share a
// payload. Errors are returned untouched; writing the error body is the
// error handler's job, so a request gets exactly one response.
//
//	r.Any("/*", handler.Handle(h, h.exportEvents, http.StatusOK, newExportRequest))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	fn HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		started := time.Now()
		log := middleware.GetLogger(c)

		req := newReq()
		if err := validation.BindAndValidate(c, req); err != nil {
			log.Debug().Dur("elapsed", time.Since(started)).Msg("request rejected")
			return err
		}
		validated := time.Now()

		res, err := fn(c, req)
		if err != nil {
			log.Debug().
				Dur("elapsed", time.Since(started)).
				Dur("handler_elapsed", time.Since(validated)).
				Msg("handler failed")
			return err
		}

		log.Debug().
			Dur("elapsed", time.Since(started)).
			Dur("validation_elapsed", validated.Sub(started)).
			Dur("handler_elapsed", time.Since(validated)).
			Msg("handler succeeded")

		return c.JSON(status, res)
	}
}
