package domain

import (
	"errors"
	"fmt"
)

// Business-rule failures are plain error values. Callers branch with
// errors.Is and surface the message verbatim. Invariant breaches (mutator
// misuse) panic instead, see the individual mutators.
var (
	// ErrNotFound is wrapped by repositories with the entity name.
	ErrNotFound = errors.New("not found")

	ErrQuantityNotPositive  = errors.New("Quantity must be positive")
	ErrInsufficientCapacity = errors.New("Insufficient capacity")
	ErrSectionIDRequired    = errors.New("Section ID is required")
	ErrSeatIDRequired       = errors.New("Seat ID is required")
	ErrSeatNotAvailable     = errors.New("Seat not available")
	ErrSeatNotLocked        = errors.New("Seat is not locked")
	ErrSeatQuantity         = errors.New("Seat bookings are for one seat")
	ErrSoldOut              = errors.New("sold out")

	// ErrVersionConflict reports that a conditional write matched no rows: a
	// concurrent booking changed the aggregate between load and commit.
	ErrVersionConflict = errors.New("event was modified by another transaction")
)

// SoldOutError names the event so the message reads
// "Event '<name>' is sold out". It matches errors.Is(err, ErrSoldOut).
type SoldOutError struct {
	EventName string
}

func (e SoldOutError) Error() string {
	return fmt.Sprintf("Event '%s' is sold out", e.EventName)
}

func (e SoldOutError) Is(target error) bool {
	return target == ErrSoldOut
}
