package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deppfellow/export-geoconfirmed/internal/errs"
	"github.com/pkg/errors"
)

const (
	// MinHours is the smallest accepted look-back window.
	MinHours = 1

	// MaxHours is the largest accepted look-back window: one year.
	MaxHours = 8760
)

// HoursError reports why a raw `hours` value was rejected.
type HoursError struct {
	Kind errs.Kind
	Raw  string
}

// ErrMissingHours is returned when the `hours` parameter is absent or empty.
var ErrMissingHours = &HoursError{Kind: errs.KindMissingParameter}

func (e *HoursError) Error() string {
	switch e.Kind {
	case errs.KindMissingParameter:
		return "Missing 'hours' query parameter"
	case errs.KindNotAnInteger:
		return fmt.Sprintf("hours must be an integer, got: %s", e.Raw)
	case errs.KindTooSmall:
		return fmt.Sprintf("hours must be at least %d", MinHours)
	case errs.KindTooLarge:
		return fmt.Sprintf("hours cannot exceed %d (1 year)", MaxHours)
	}
	return "invalid hours: " + e.Raw
}

// ParseHours parses raw as a base-10 integer in [MinHours, MaxHours].
//
// Surrounding whitespace is ignored. Fractions ("24.5") and text are
// KindNotAnInteger; integers too large for an int still count as
// integers and fail on the bound they exceed.
func ParseHours(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)

	hours, err := strconv.Atoi(trimmed)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(trimmed, "-") {
				return 0, &HoursError{Kind: errs.KindTooSmall, Raw: raw}
			}
			return 0, &HoursError{Kind: errs.KindTooLarge, Raw: raw}
		}
		return 0, &HoursError{Kind: errs.KindNotAnInteger, Raw: raw}
	}

	if hours < MinHours {
		return 0, &HoursError{Kind: errs.KindTooSmall, Raw: raw}
	}
	if hours > MaxHours {
		return 0, &HoursError{Kind: errs.KindTooLarge, Raw: raw}
	}

	return hours, nil
}
