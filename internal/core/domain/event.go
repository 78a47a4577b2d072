package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType tags which inventory shape an event sells. Exactly one of the
// variant sub-structures (reserved counter, section allocations, seat cells)
// is populated per event; the constructors below are the only way to build
// one.
type EventType string

const (
	// EventOpen sells by quantity only: a capacity number and a counter.
	EventOpen EventType = "OPEN"
	// EventSectioned partitions inventory into per-section allocations.
	EventSectioned EventType = "SECTIONED"
	// EventSeated tracks one status cell per physical seat.
	EventSeated EventType = "SEATED"
)

// Event is the capacity aggregate. All derived figures (TotalCapacity,
// TotalReserved, AvailableCapacity, IsSoldOut) are computed on demand from
// the variant sub-structure; nothing is stored twice.
type Event struct {
	ID                  uuid.UUID
	VenueID             uuid.UUID
	Name                string
	StartsAt            time.Time
	EndsAt              time.Time
	EstimatedAttendance int
	Type                EventType

	// Version guards concurrent aggregate updates at the persistence
	// boundary. The engine never touches it.
	Version int

	// Price applies to open-capacity and seated bookings. Section-quota
	// bookings price per allocation instead. Nil means free admission.
	Price *float64

	// CapacityOverride caps TotalCapacity below (or above) the derived
	// figure for open and sectioned events.
	CapacityOverride *int

	// EventOpen only.
	Capacity int
	reserved int

	// EventSectioned only.
	Sections []*SectionAllocation

	// EventSeated only.
	Seats []*EventSeat
}

func NewOpenEvent(venueID uuid.UUID, name string, startsAt, endsAt time.Time, capacity int, price *float64) (*Event, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("event '%s': capacity must not be negative", name)
	}
	return &Event{
		ID:       uuid.New(),
		VenueID:  venueID,
		Name:     name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Type:     EventOpen,
		Capacity: capacity,
		Price:    price,
	}, nil
}

func NewSectionedEvent(venueID uuid.UUID, name string, startsAt, endsAt time.Time, sections []*SectionAllocation) (*Event, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("event '%s': at least one section allocation is required", name)
	}
	return &Event{
		ID:       uuid.New(),
		VenueID:  venueID,
		Name:     name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Type:     EventSectioned,
		Sections: sections,
	}, nil
}

func NewSeatedEvent(venueID uuid.UUID, name string, startsAt, endsAt time.Time, seats []*EventSeat, price *float64) (*Event, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("event '%s': at least one seat is required", name)
	}
	return &Event{
		ID:       uuid.New(),
		VenueID:  venueID,
		Name:     name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Type:     EventSeated,
		Seats:    seats,
		Price:    price,
	}, nil
}

// RestoreReserved rehydrates the open-capacity counter from storage.
// Storage adapters only.
func (e *Event) RestoreReserved(n int) error {
	if e.Type != EventOpen {
		return fmt.Errorf("event '%s': reserved counter only exists on open-capacity events", e.Name)
	}
	if n < 0 || n > e.Capacity {
		return fmt.Errorf("event '%s': stored reserved count %d outside [0, %d]", e.Name, n, e.Capacity)
	}
	e.reserved = n
	return nil
}

// TotalCapacity derives the sellable total for the event's variant,
// honoring an override where one is set.
func (e *Event) TotalCapacity() int {
	if e.CapacityOverride != nil && e.Type != EventSeated {
		return *e.CapacityOverride
	}
	switch e.Type {
	case EventOpen:
		return e.Capacity
	case EventSectioned:
		total := 0
		for _, a := range e.Sections {
			total += a.Capacity
		}
		return total
	case EventSeated:
		return len(e.Seats)
	default:
		panic(fmt.Sprintf("event '%s': unknown event type %q", e.Name, e.Type))
	}
}

// TotalReserved derives the booked total for the event's variant.
func (e *Event) TotalReserved() int {
	switch e.Type {
	case EventOpen:
		return e.reserved
	case EventSectioned:
		total := 0
		for _, a := range e.Sections {
			total += a.Booked()
		}
		return total
	case EventSeated:
		total := 0
		for _, s := range e.Seats {
			if s.Status() == SeatReserved {
				total++
			}
		}
		return total
	default:
		panic(fmt.Sprintf("event '%s': unknown event type %q", e.Name, e.Type))
	}
}

func (e *Event) AvailableCapacity() int {
	return e.TotalCapacity() - e.TotalReserved()
}

func (e *Event) IsSoldOut() bool {
	return e.AvailableCapacity() <= 0
}

// HasStarted reports whether the event already began at the given instant.
func (e *Event) HasStarted(now time.Time) bool {
	return !now.Before(e.StartsAt)
}

// ValidateCapacity checks whether quantity tickets fit into the remaining
// capacity, regardless of variant. Pure read, no mutation.
func (e *Event) ValidateCapacity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if e.IsSoldOut() {
		return SoldOutError{EventName: e.Name}
	}
	if quantity > e.AvailableCapacity() {
		return ErrInsufficientCapacity
	}
	return nil
}

// Reserve increments the open-capacity counter after re-validating.
// Calling it on a non-open event is a caller bug.
func (e *Event) Reserve(quantity int) error {
	if e.Type != EventOpen {
		panic(fmt.Sprintf("Reserve on event '%s': not an open-capacity event", e.Name))
	}
	if err := e.ValidateCapacity(quantity); err != nil {
		return err
	}
	e.reserved += quantity
	return nil
}

// SectionAllocation returns the ledger entry for a physical section, or nil.
func (e *Event) SectionAllocation(sectionID uuid.UUID) *SectionAllocation {
	for _, a := range e.Sections {
		if a.SectionID == sectionID {
			return a
		}
	}
	return nil
}

// SeatCell returns the status cell for a physical seat, or nil.
func (e *Event) SeatCell(seatID uuid.UUID) *EventSeat {
	for _, s := range e.Seats {
		if s.SeatID == seatID {
			return s
		}
	}
	return nil
}

// Clone deep-copies the aggregate. Reservations run against a clone so a
// failed booking attempt can be discarded without poisoning the loaded
// instance.
func (e *Event) Clone() *Event {
	clone := *e
	if e.Price != nil {
		p := *e.Price
		clone.Price = &p
	}
	if e.CapacityOverride != nil {
		o := *e.CapacityOverride
		clone.CapacityOverride = &o
	}
	if e.Sections != nil {
		clone.Sections = make([]*SectionAllocation, len(e.Sections))
		for i, a := range e.Sections {
			copied := *a
			clone.Sections[i] = &copied
		}
	}
	if e.Seats != nil {
		clone.Seats = make([]*EventSeat, len(e.Seats))
		for i, s := range e.Seats {
			copied := *s
			clone.Seats[i] = &copied
		}
	}
	return &clone
}
