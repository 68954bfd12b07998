package booking

import (
	"errors"
	"fmt"
)

var ErrBookingNotFound = errors.New("booking not found")

// ValidationError reports a malformed or missing field before any write.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Conflict describes one colliding booking so operators can see exactly
// what is blocking an assignment.
type Conflict struct {
	BookingID  int64  `json:"booking_id"`
	Date       string `json:"date"`
	EndDate    string `json:"end_date,omitempty"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time,omitempty"`
	ClientName string `json:"client_name"`
}

// ConflictError is returned both by the synchronous check and by the
// in-transaction re-validation, so a losing concurrent writer sees the
// same shape.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("nanny already booked on %d overlapping booking(s)", len(e.Conflicts))
}

// InvalidTransitionError is returned when the requested status is not
// reachable from the current one.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
