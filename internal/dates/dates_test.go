package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/dagaz/internal/apperr"
)

func TestNormalize_CommonFormats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"January 15, 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 Jan 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Errorf("Normalize(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Unparsable(t *testing.T) {
	for _, in := range []string{"not-a-date", "soonish"} {
		if _, err := Normalize(in); !errors.Is(err, apperr.ErrBadDate) {
			t.Errorf("Normalize(%q) err = %v, want ErrBadDate", in, err)
		}
	}
}
