package usecase

import (
	"fmt"
	"time"

	"pharmacy-records/internal/converter"
	"pharmacy-records/pkg/apperror"
)

// parseDate reads a YYYY-MM-DD value as UTC midnight.
func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(converter.DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.InvalidInput(fmt.Sprintf("invalid %s %q, use YYYY-MM-DD", field, value), err)
	}
	return normalizeDate(date), nil
}

// normalizeDate drops the time of day so stored dates compare as calendar days.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
