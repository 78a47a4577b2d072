package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

func TestEventSeat_ReserveFromAvailable(t *testing.T) {
	seat := domain.NewEventSeat(uuid.New(), uuid.New(), "A-1")
	require.Equal(t, domain.SeatAvailable, seat.Status())

	require.NoError(t, seat.Reserve())
	assert.Equal(t, domain.SeatReserved, seat.Status())

	err := seat.Reserve()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatNotAvailable)
	assert.Equal(t, domain.SeatReserved, seat.Status())
}

func TestEventSeat_LockAndRelease(t *testing.T) {
	seat := domain.NewEventSeat(uuid.New(), uuid.New(), "A-1")

	require.NoError(t, seat.Lock())
	assert.Equal(t, domain.SeatLocked, seat.Status())

	// A locked seat cannot be locked or reserved again.
	assert.ErrorIs(t, seat.Lock(), domain.ErrSeatNotAvailable)
	assert.ErrorIs(t, seat.Reserve(), domain.ErrSeatNotAvailable)

	require.NoError(t, seat.Release())
	assert.Equal(t, domain.SeatAvailable, seat.Status())
	assert.True(t, seat.IsAvailable())
}

func TestEventSeat_ConfirmHold(t *testing.T) {
	seat := domain.NewEventSeat(uuid.New(), uuid.New(), "A-1")

	require.NoError(t, seat.Lock())
	require.NoError(t, seat.ConfirmHold())
	assert.Equal(t, domain.SeatReserved, seat.Status())

	// Only a locked seat can be confirmed.
	assert.ErrorIs(t, seat.ConfirmHold(), domain.ErrSeatNotLocked)
}

func TestEventSeat_ReservedCannotBeReleased(t *testing.T) {
	seat := domain.NewEventSeat(uuid.New(), uuid.New(), "A-1")
	require.NoError(t, seat.Reserve())

	err := seat.Release()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatNotLocked)
	assert.Equal(t, domain.SeatReserved, seat.Status())
}

func TestEventSeat_AvailableCannotBeReleased(t *testing.T) {
	seat := domain.NewEventSeat(uuid.New(), uuid.New(), "A-1")

	assert.ErrorIs(t, seat.Release(), domain.ErrSeatNotLocked)
}

func TestRestoreEventSeat(t *testing.T) {
	seat, err := domain.RestoreEventSeat(uuid.New(), uuid.New(), "B-7", domain.SeatLocked, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatLocked, seat.Status())
	assert.Equal(t, 3, seat.Version)

	_, err = domain.RestoreEventSeat(uuid.New(), uuid.New(), "B-7", "TAKEN", 0)
	assert.Error(t, err)
}
