package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatReserved  SeatStatus = "RESERVED"
	SeatLocked    SeatStatus = "LOCKED"
)

// EventSeat is the per-(event, physical seat) status cell. Its lifecycle:
//
//	AVAILABLE -> RESERVED   (Reserve, terminal here; undone only by an
//	                         out-of-scope cancellation flow)
//	AVAILABLE -> LOCKED     (Lock, temporary hold)
//	LOCKED    -> AVAILABLE  (Release)
//	LOCKED    -> RESERVED   (ConfirmHold)
//
// The status field is private and never silently reset; every transition
// goes through one of the methods below.
type EventSeat struct {
	EventID uuid.UUID
	SeatID  uuid.UUID
	Label   string
	Version int

	status SeatStatus
}

// NewEventSeat creates an AVAILABLE cell for a physical seat.
func NewEventSeat(eventID, seatID uuid.UUID, label string) *EventSeat {
	return &EventSeat{
		EventID: eventID,
		SeatID:  seatID,
		Label:   label,
		status:  SeatAvailable,
	}
}

// RestoreEventSeat rehydrates a cell from storage. Storage adapters only.
func RestoreEventSeat(eventID, seatID uuid.UUID, label string, status SeatStatus, version int) (*EventSeat, error) {
	switch status {
	case SeatAvailable, SeatReserved, SeatLocked:
	default:
		return nil, fmt.Errorf("seat '%s': unknown stored status %q", label, status)
	}
	return &EventSeat{
		EventID: eventID,
		SeatID:  seatID,
		Label:   label,
		Version: version,
		status:  status,
	}, nil
}

func (s *EventSeat) Status() SeatStatus {
	return s.status
}

func (s *EventSeat) IsAvailable() bool {
	return s.status == SeatAvailable
}

// Reserve moves an AVAILABLE cell to RESERVED.
func (s *EventSeat) Reserve() error {
	if s.status != SeatAvailable {
		return ErrSeatNotAvailable
	}
	s.status = SeatReserved
	return nil
}

// ConfirmHold converts a LOCKED cell into a firm RESERVED one.
func (s *EventSeat) ConfirmHold() error {
	if s.status != SeatLocked {
		return ErrSeatNotLocked
	}
	s.status = SeatReserved
	return nil
}

// Lock places a temporary hold on an AVAILABLE seat.
func (s *EventSeat) Lock() error {
	if s.status != SeatAvailable {
		return ErrSeatNotAvailable
	}
	s.status = SeatLocked
	return nil
}

// Release returns a LOCKED seat to AVAILABLE. Reserved seats cannot be
// released through this engine.
func (s *EventSeat) Release() error {
	if s.status != SeatLocked {
		return ErrSeatNotLocked
	}
	s.status = SeatAvailable
	return nil
}
