// Package validation contains the logic for validating
// request data.
//
// It binds the `hours` query parameter, bounds-checks the look-back
// window and turns every failure into a 400 *errs.HTTPError whose Kind
// tells the caller which rule was broken.
package validation

import (
	"github.com/deppfellow/export-geoconfirmed/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds query parameters into payload and validates it.
//
// Flow:
//  1. Query parameters are bound for every HTTP method, not only GET.
//  2. payload.Validate() applies validation rules.
//  3. An *HoursError becomes a 400 *errs.HTTPError carrying its Kind.
//
// NOTE: payload must be a pointer so the binder can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, payload); err != nil {
		return errors.Wrap(err, "failed to bind query parameters")
	}

	if err := payload.Validate(); err != nil {
		var hoursErr *HoursError
		if errors.As(err, &hoursErr) {
			return errs.NewBadRequestError(hoursErr.Error(), hoursErr.Kind)
		}
		return err
	}

	return nil
}
