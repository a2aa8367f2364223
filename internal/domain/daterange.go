package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date обрезает время до полуночи UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// ValidateRange требует, чтобы end был строго позже start (минимум один день).
func ValidateRange(start, end time.Time) error {
	if !Date(end).After(Date(start)) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrInvalidRange)
	}
	return nil
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
