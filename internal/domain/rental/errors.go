package rental

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("rental not found")
	ErrAlreadyActive     = errors.New("already active")
	ErrAlreadyTerminated = errors.New("already terminated")
	ErrAlreadyExpired    = errors.New("already expired")
	ErrAlreadyEnded      = errors.New("already ended")
	ErrClosed            = errors.New("this rental has ended and can no longer be edited")

	// Message surfaced verbatim to users; controllers rely on the exact text.
	ErrDuplicateActive = errors.New("This property already has an active rental contract.")
)

// RentMismatchError rejects a save whose monthly rent has drifted from the
// property's estimated monthly rate beyond the allowed tolerance.
type RentMismatchError struct {
	Rent      float64
	Estimated float64
}

func (e *RentMismatchError) Error() string {
	return fmt.Sprintf("Monthly rent (%.2f) does not match the property's estimated monthly rate (%.2f).", e.Rent, e.Estimated)
}

// RenewDateError rejects a renewal whose end date is not strictly later than
// the required floor date.
type RenewDateError struct {
	Given string
	Floor string
	What  string // "start date" or "current end date"
}

func (e *RenewDateError) Error() string {
	return fmt.Sprintf("Renewal end date (%s) must be after the %s (%s).", e.Given, e.What, e.Floor)
}
