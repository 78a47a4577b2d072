package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// AllocationMode controls how seats inside a section allocation are handed
// out. The engine only tracks quantities either way; the mode is metadata
// for whoever assigns concrete seats later.
type AllocationMode string

const (
	AllocationOpen          AllocationMode = "OPEN"
	AllocationAssigned      AllocationMode = "ASSIGNED"
	AllocationBestAvailable AllocationMode = "BEST_AVAILABLE"
)

// SectionAllocation is the per-(event, section) inventory ledger entry:
// how many seats of a physical section an event sells, at what price, and
// how many are already booked. The booked counter is private; it moves only
// through ReserveSeats and ReleaseSeats, which keep 0 <= booked <= Capacity
// at all times.
type SectionAllocation struct {
	EventID     uuid.UUID
	SectionID   uuid.UUID
	SectionName string
	Capacity    int
	Price       float64
	Mode        AllocationMode

	booked int
}

func NewSectionAllocation(eventID, sectionID uuid.UUID, sectionName string, capacity int, price float64, mode AllocationMode) (*SectionAllocation, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("section '%s': capacity must not be negative", sectionName)
	}
	return &SectionAllocation{
		EventID:     eventID,
		SectionID:   sectionID,
		SectionName: sectionName,
		Capacity:    capacity,
		Price:       price,
		Mode:        mode,
	}, nil
}

// RestoreSectionAllocation rehydrates a ledger entry from storage,
// including its booked counter. Storage adapters only.
func RestoreSectionAllocation(eventID, sectionID uuid.UUID, sectionName string, capacity, booked int, price float64, mode AllocationMode) (*SectionAllocation, error) {
	a, err := NewSectionAllocation(eventID, sectionID, sectionName, capacity, price, mode)
	if err != nil {
		return nil, err
	}
	if booked < 0 || booked > capacity {
		return nil, fmt.Errorf("section '%s': stored booked count %d outside [0, %d]", sectionName, booked, capacity)
	}
	a.booked = booked
	return a, nil
}

func (a *SectionAllocation) Booked() int {
	return a.booked
}

func (a *SectionAllocation) Remaining() int {
	return a.Capacity - a.booked
}

func (a *SectionAllocation) IsSoldOut() bool {
	return a.Remaining() <= 0
}

// ValidateReservation checks whether quantity seats can be booked from this
// allocation. Pure read, no mutation.
func (a *SectionAllocation) ValidateReservation(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if a.IsSoldOut() {
		return fmt.Errorf("Section '%s' is %w", a.SectionName, ErrSoldOut)
	}
	if quantity > a.Remaining() {
		return fmt.Errorf("%w in section '%s'", ErrInsufficientCapacity, a.SectionName)
	}
	return nil
}

// ReserveSeats increments the booked counter. Callers must have run
// ValidateReservation first; calling it when validation would fail is a
// caller bug and panics rather than returning a business result.
func (a *SectionAllocation) ReserveSeats(quantity int) {
	if err := a.ValidateReservation(quantity); err != nil {
		panic(fmt.Sprintf("ReserveSeats(%d) on section '%s' without successful validation: %v", quantity, a.SectionName, err))
	}
	a.booked += quantity
}

// ReleaseSeats decrements the booked counter. Releasing more than is booked
// indicates a caller bug and panics.
func (a *SectionAllocation) ReleaseSeats(quantity int) {
	if quantity <= 0 {
		panic(fmt.Sprintf("ReleaseSeats(%d) on section '%s': quantity must be positive", quantity, a.SectionName))
	}
	if quantity > a.booked {
		panic(fmt.Sprintf("ReleaseSeats(%d) on section '%s': only %d booked", quantity, a.SectionName, a.booked))
	}
	a.booked -= quantity
}
