// Package validators holds the input validation rules applied by the
// service layer before any write reaches the store: credential checks,
// to-do field checks, and the due-date clamping contract.
package validators

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to the list of validation messages for
// that field. It implements error so services can return it directly;
// the HTTP layer serializes it verbatim as a 400 response body.
type FieldErrors map[string][]string

// Error implements the error interface. Field names are sorted so the
// message is deterministic.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// add appends a message for the given field.
func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// Validation message texts shared across entities.
const (
	msgRequired      = "this field is required"
	msgUsernameTaken = "a user with that username already exists"
)

// MsgUsernameTaken is the message attached to the "username" field when
// registration hits the unique constraint on the users table.
func MsgUsernameTaken() FieldErrors {
	return FieldErrors{"username": {msgUsernameTaken}}
}

// MsgBadCredentials is the body returned when login credentials do not
// match any account.
func MsgBadCredentials() FieldErrors {
	return FieldErrors{"non_field_errors": {"unable to log in with provided credentials"}}
}

// DueDateFormatError is returned when a due_date value does not match
// the YYYY-MM-DD wire format. The message text is part of the API
// contract and is asserted byte-for-byte by the test suite.
type DueDateFormatError struct {
	// Value is the offending input string.
	Value string
}

// Error formats the contract message, embedding the offending input and
// the expected strptime pattern.
func (e *DueDateFormatError) Error() string {
	return fmt.Sprintf("time data '%s' does not match format '%%Y-%%m-%%d'", e.Value)
}
