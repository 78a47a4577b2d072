package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

func floorAllocation(t *testing.T, capacity int, price float64) *domain.SectionAllocation {
	t.Helper()
	allocation, err := domain.NewSectionAllocation(uuid.New(), uuid.New(), "Floor", capacity, price, domain.AllocationOpen)
	require.NoError(t, err)
	return allocation
}

func TestReserveSeats_IncrementsBooked(t *testing.T) {
	allocation := floorAllocation(t, 500, 100)

	require.NoError(t, allocation.ValidateReservation(4))
	allocation.ReserveSeats(4)

	assert.Equal(t, 4, allocation.Booked())
	assert.Equal(t, 496, allocation.Remaining())
}

func TestValidateReservation_Failures(t *testing.T) {
	allocation := floorAllocation(t, 10, 100)
	allocation.ReserveSeats(8)

	err := allocation.ValidateReservation(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.EqualError(t, err, "Insufficient capacity in section 'Floor'")

	assert.ErrorIs(t, allocation.ValidateReservation(0), domain.ErrQuantityNotPositive)

	allocation.ReserveSeats(2)
	err = allocation.ValidateReservation(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSoldOut)
	assert.EqualError(t, err, "Section 'Floor' is sold out")
}

// ReserveSeats without a passing validation is caller misuse, not a
// business outcome.
func TestReserveSeats_PanicsWithoutValidation(t *testing.T) {
	allocation := floorAllocation(t, 3, 100)

	require.Panics(t, func() { allocation.ReserveSeats(4) })
	assert.Equal(t, 0, allocation.Booked(), "failed reserve must not move the counter")
}

func TestReleaseSeats(t *testing.T) {
	allocation := floorAllocation(t, 10, 100)
	allocation.ReserveSeats(6)

	allocation.ReleaseSeats(2)

	assert.Equal(t, 4, allocation.Booked())
	assert.Equal(t, 6, allocation.Remaining())
}

func TestReleaseSeats_PanicsBelowZero(t *testing.T) {
	allocation := floorAllocation(t, 10, 100)
	allocation.ReserveSeats(2)

	require.Panics(t, func() { allocation.ReleaseSeats(3) })
	require.Panics(t, func() { allocation.ReleaseSeats(0) })
	assert.Equal(t, 2, allocation.Booked())
}

func TestRestoreSectionAllocation_ValidatesBookedRange(t *testing.T) {
	eventID, sectionID := uuid.New(), uuid.New()

	_, err := domain.RestoreSectionAllocation(eventID, sectionID, "Floor", 10, 11, 100, domain.AllocationOpen)
	assert.Error(t, err)

	_, err = domain.RestoreSectionAllocation(eventID, sectionID, "Floor", 10, -1, 100, domain.AllocationOpen)
	assert.Error(t, err)

	allocation, err := domain.RestoreSectionAllocation(eventID, sectionID, "Floor", 10, 10, 100, domain.AllocationOpen)
	require.NoError(t, err)
	assert.True(t, allocation.IsSoldOut())
}
