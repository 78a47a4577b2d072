package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Venue is the physical layout a booking engine sells against. The hierarchy
// Venue -> Section -> Seat is fixed once configured; capacities are always
// derived by counting children, never stored.
type Venue struct {
	ID       uuid.UUID
	Name     string
	Address  string
	Sections []*Section
}

func NewVenue(name, address string) *Venue {
	return &Venue{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
	}
}

// Capacity is the sum of the section capacities.
func (v *Venue) Capacity() int {
	total := 0
	for _, s := range v.Sections {
		total += s.Capacity()
	}
	return total
}

func (v *Venue) AddSection(name string) *Section {
	section := &Section{
		ID:      uuid.New(),
		VenueID: v.ID,
		Name:    name,
	}
	v.Sections = append(v.Sections, section)
	return section
}

// Section returns the section with the given ID, or nil.
func (v *Venue) Section(id uuid.UUID) *Section {
	for _, s := range v.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Section is a named block of seats inside a venue.
type Section struct {
	ID      uuid.UUID
	VenueID uuid.UUID
	Name    string
	Seats   []*Seat
}

// Capacity is the number of seats in the section.
func (s *Section) Capacity() int {
	return len(s.Seats)
}

// AddSeat appends a seat to the section. (Row, Number) must be unique
// within the section.
func (s *Section) AddSeat(row string, number int, label string) (*Seat, error) {
	for _, seat := range s.Seats {
		if seat.Row == row && seat.Number == number {
			return nil, fmt.Errorf("seat %s-%d already exists in section '%s'", row, number, s.Name)
		}
	}
	seat := &Seat{
		ID:        uuid.New(),
		SectionID: s.ID,
		Row:       row,
		Number:    number,
		Label:     label,
	}
	s.Seats = append(s.Seats, seat)
	return seat, nil
}

// Seat is a physical seat. It outlives any single event; per-event
// availability lives in EventSeat, not here.
type Seat struct {
	ID        uuid.UUID
	SectionID uuid.UUID
	Row       string
	Number    int
	Label     string
}
