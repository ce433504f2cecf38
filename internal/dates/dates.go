// Package dates normalizes free-form date strings from document metadata.
package dates

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/starford/dagaz/internal/apperr"
)

// Normalize parses s into a time.Time without a fixed layout. It accepts the
// common formats people put in document headers (ISO 8601, RFC 3339,
// "January 15, 2024", "15 Jan 2024", ...). A string that matches no known
// date grammar returns an error wrapping apperr.ErrBadDate.
func Normalize(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: %q: %w", s, apperr.ErrBadDate)
	}
	return t, nil
}
