package weather

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a record date is not an ISO-8601 calendar date.
var ErrInvalidDate = errors.New("invalid ISO date")

// isoTimeLayouts are the accepted time parts after the 'T' or ' ' separator.
// Fractional seconds are accepted by time.Parse after the seconds field.
var isoTimeLayouts = []string{
	"15", "15Z07:00",
	"15:04", "15:04Z07:00",
	"15:04:05", "15:04:05Z07:00",
}

// FormatDate renders an ISO date ("2021-07-06", optionally followed by a time
// part) as "Tuesday 06 July 2021". A time part must be valid but is not rendered.
func FormatDate(isoDate string) (string, error) {
	date, err := parseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return date.Format(DateLayout), nil
}

func parseISODate(isoDate string) (time.Time, error) {
	datePart := isoDate
	if len(isoDate) > len(isoDateLayout) {
		sep := isoDate[len(isoDateLayout)]
		if sep != 'T' && sep != ' ' {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, isoDate)
		}
		datePart = isoDate[:len(isoDateLayout)]
		if !isISOTime(isoDate[len(isoDateLayout)+1:]) {
			return time.Time{}, fmt.Errorf("%w: %q: bad time part", ErrInvalidDate, isoDate)
		}
	}

	date, err := time.Parse(isoDateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, isoDate, err)
	}
	return date, nil
}

func isISOTime(s string) bool {
	for _, layout := range isoTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
