package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/services"
)

func sectionedTestEvent(t *testing.T, capacity int, price float64) (*domain.Event, uuid.UUID) {
	t.Helper()
	eventID := uuid.New()
	sectionID := uuid.New()
	allocation, err := domain.NewSectionAllocation(eventID, sectionID, "Floor", capacity, price, domain.AllocationOpen)
	require.NoError(t, err)
	event, err := domain.NewSectionedEvent(
		uuid.New(), "Arena Show",
		time.Now().Add(24*time.Hour), time.Now().Add(30*time.Hour),
		[]*domain.SectionAllocation{allocation},
	)
	require.NoError(t, err)
	return event, sectionID
}

func seatedTestEvent(t *testing.T, price *float64) (*domain.Event, uuid.UUID) {
	t.Helper()
	eventID := uuid.New()
	seatID := uuid.New()
	event, err := domain.NewSeatedEvent(
		uuid.New(), "Recital",
		time.Now().Add(24*time.Hour), time.Now().Add(30*time.Hour),
		[]*domain.EventSeat{domain.NewEventSeat(eventID, seatID, "A-1")},
		price,
	)
	require.NoError(t, err)
	return event, seatID
}

func TestReserveCapacity_Open(t *testing.T) {
	price := 25.0
	event, err := domain.NewOpenEvent(
		uuid.New(), "Summer Gala",
		time.Now().Add(24*time.Hour), time.Now().Add(30*time.Hour),
		10, &price,
	)
	require.NoError(t, err)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingOpen, outcome.Kind)
	assert.Equal(t, 2, outcome.Quantity)
	assert.Equal(t, 50.0, outcome.TotalAmount())
	assert.Nil(t, outcome.SectionID)
	assert.Nil(t, outcome.SeatID)
	assert.Equal(t, 2, event.TotalReserved())
}

func TestReserveCapacity_OpenWithoutPriceIsFree(t *testing.T) {
	event, err := domain.NewOpenEvent(
		uuid.New(), "Community Day",
		time.Now().Add(24*time.Hour), time.Now().Add(30*time.Hour),
		10, nil,
	)
	require.NoError(t, err)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.TotalAmount())
}

func TestReserveCapacity_Section(t *testing.T) {
	event, sectionID := sectionedTestEvent(t, 500, 100)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{
		Quantity:  4,
		SectionID: &sectionID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingSection, outcome.Kind)
	assert.Equal(t, 400.0, outcome.TotalAmount())
	require.NotNil(t, outcome.SectionID)
	assert.Equal(t, sectionID, *outcome.SectionID)

	allocation := event.SectionAllocation(sectionID)
	assert.Equal(t, 4, allocation.Booked())
	assert.Equal(t, 496, allocation.Remaining())
}

// A section-quota request without a section must be rejected before any
// state moves.
func TestReserveCapacity_SectionIDRequired(t *testing.T) {
	event, _ := sectionedTestEvent(t, 500, 100)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{Quantity: 4})

	require.Error(t, err)
	assert.EqualError(t, err, "Section ID is required")
	assert.Nil(t, outcome)
	assert.Equal(t, 0, event.TotalReserved())
}

func TestReserveCapacity_UnknownSection(t *testing.T) {
	event, _ := sectionedTestEvent(t, 500, 100)
	unknown := uuid.New()

	_, err := services.ReserveCapacity(event, services.ReservationRequest{
		Quantity:  1,
		SectionID: &unknown,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allocated for event")
	assert.Equal(t, 0, event.TotalReserved())
}

func TestReserveCapacity_Seat(t *testing.T) {
	price := 80.0
	event, seatID := seatedTestEvent(t, &price)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{
		Quantity: 1,
		SeatID:   &seatID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingSeat, outcome.Kind)
	assert.Equal(t, 1, outcome.Quantity)
	assert.Equal(t, 80.0, outcome.TotalAmount())
	assert.Equal(t, domain.SeatReserved, event.SeatCell(seatID).Status())

	// The same cell cannot be reserved twice.
	_, err = services.ReserveCapacity(event, services.ReservationRequest{
		Quantity: 1,
		SeatID:   &seatID,
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Seat not available")
}

// Asking for several tickets against a single seat cell must be rejected
// outright, never quietly fulfilled as one seat.
func TestReserveCapacity_SeatQuantityMustBeOne(t *testing.T) {
	price := 80.0
	event, seatID := seatedTestEvent(t, &price)

	outcome, err := services.ReserveCapacity(event, services.ReservationRequest{
		Quantity: 3,
		SeatID:   &seatID,
	})

	require.Error(t, err)
	assert.EqualError(t, err, "Seat bookings are for one seat")
	assert.Nil(t, outcome)
	assert.Equal(t, domain.SeatAvailable, event.SeatCell(seatID).Status())
}

func TestReserveCapacity_SeatIDRequired(t *testing.T) {
	event, seatID := seatedTestEvent(t, nil)

	_, err := services.ReserveCapacity(event, services.ReservationRequest{Quantity: 1})

	require.Error(t, err)
	assert.EqualError(t, err, "Seat ID is required")
	assert.Equal(t, domain.SeatAvailable, event.SeatCell(seatID).Status())
}

func TestReserveCapacity_SeatNotPartOfEvent(t *testing.T) {
	event, _ := seatedTestEvent(t, nil)
	unknown := uuid.New()

	_, err := services.ReserveCapacity(event, services.ReservationRequest{
		Quantity: 1,
		SeatID:   &unknown,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatNotAvailable)
}
