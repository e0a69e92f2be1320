package validators

import (
	"time"

	"github.com/MKhiriev/go-todo-api/models"
)

// ValidateDueDate enforces the "never in the past" rule on a due_date
// value.
//
// The input must be a date in YYYY-MM-DD form. A value that fails to
// parse yields a *DueDateFormatError carrying the offending string. A
// value strictly earlier than the current date (by now's calendar day,
// server clock) is silently replaced with today's date; anything else
// passes through unchanged. Past dates are therefore clamped forward,
// never rejected.
func ValidateDueDate(value string, now time.Time) (string, error) {
	parsed, err := time.Parse(models.DueDateLayout, value)
	if err != nil {
		return "", &DueDateFormatError{Value: value}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return today.Format(models.DueDateLayout), nil
	}

	return value, nil
}
