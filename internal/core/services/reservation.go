package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

// ReservationOutcome describes what a successful reservation put on hold:
// the booking kind, the quantity, the unit price the total is computed
// from, and the selector (section or seat) it was charged against.
type ReservationOutcome struct {
	Kind      domain.BookingKind
	Quantity  int
	UnitPrice float64
	SectionID *uuid.UUID
	SeatID    *uuid.UUID
}

// TotalAmount is quantity times unit price.
func (o *ReservationOutcome) TotalAmount() float64 {
	return float64(o.Quantity) * o.UnitPrice
}

// ReserveCapacity dispatches on the event variant, validates the request
// against it and applies the matching in-memory mutation as one step. On a
// non-nil error nothing was mutated. It never retries or compensates.
//
// The event passed in should be a clone of the loaded aggregate; the caller
// commits it to storage only after payment succeeds and discards it
// otherwise.
func ReserveCapacity(event *domain.Event, req ReservationRequest) (*ReservationOutcome, error) {
	switch event.Type {
	case domain.EventOpen:
		return reserveOpen(event, req)
	case domain.EventSectioned:
		return reserveSection(event, req)
	case domain.EventSeated:
		return reserveSeat(event, req)
	default:
		panic(fmt.Sprintf("event '%s': unknown event type %q", event.Name, event.Type))
	}
}

func reserveOpen(event *domain.Event, req ReservationRequest) (*ReservationOutcome, error) {
	if err := event.Reserve(req.Quantity); err != nil {
		return nil, err
	}
	price := 0.0
	if event.Price != nil {
		price = *event.Price
	}
	return &ReservationOutcome{
		Kind:      domain.BookingOpen,
		Quantity:  req.Quantity,
		UnitPrice: price,
	}, nil
}

func reserveSection(event *domain.Event, req ReservationRequest) (*ReservationOutcome, error) {
	if req.SectionID == nil {
		return nil, domain.ErrSectionIDRequired
	}
	allocation := event.SectionAllocation(*req.SectionID)
	if allocation == nil {
		return nil, fmt.Errorf("Section '%s' is not allocated for event '%s'", req.SectionID, event.Name)
	}
	if err := allocation.ValidateReservation(req.Quantity); err != nil {
		return nil, err
	}
	allocation.ReserveSeats(req.Quantity)
	return &ReservationOutcome{
		Kind:      domain.BookingSection,
		Quantity:  req.Quantity,
		UnitPrice: allocation.Price,
		SectionID: req.SectionID,
	}, nil
}

func reserveSeat(event *domain.Event, req ReservationRequest) (*ReservationOutcome, error) {
	if req.SeatID == nil {
		return nil, domain.ErrSeatIDRequired
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrQuantityNotPositive
	}
	// One cell, one ticket. A larger quantity is a rejection, never a
	// quiet partial fulfillment.
	if req.Quantity != 1 {
		return nil, domain.ErrSeatQuantity
	}
	cell := event.SeatCell(*req.SeatID)
	if cell == nil {
		return nil, domain.ErrSeatNotAvailable
	}
	if err := cell.Reserve(); err != nil {
		return nil, err
	}
	price := 0.0
	if event.Price != nil {
		price = *event.Price
	}
	return &ReservationOutcome{
		Kind:      domain.BookingSeat,
		Quantity:  1,
		UnitPrice: price,
		SeatID:    req.SeatID,
	}, nil
}
