package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

// UserRepository looks up booking users. A missing user surfaces as an
// error wrapping domain.ErrNotFound.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// EventRepository loads event aggregates. GetByID returns the full
// aggregate: section allocations or seat cells included, depending on the
// variant. Committing a mutated aggregate happens through
// BookingRepository.Create, together with the booking it belongs to.
type EventRepository interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
}

// VenueRepository loads a venue together with its sections and seats.
type VenueRepository interface {
	GetByID(ctx context.Context, venueID uuid.UUID) (*domain.Venue, error)
}

// BookingRepository persists bookings. Create writes the booking and
// commits the mutated event aggregate in ONE atomic unit: either both
// become durable or neither does. It MUST enforce the capacity invariants
// against concurrent writers (conditional writes or a version check),
// surfacing a lost race as an error wrapping domain.ErrVersionConflict;
// the engine relies on that, it holds no lock of its own. Create reports a
// failed write as an error, never by panicking; the orchestrator turns it
// into a business failure.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking, event *domain.Event) error
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// PaymentGateway charges a user. On success it returns the gateway's
// transaction reference; on failure the error message is the gateway's
// reason, surfaced to the caller without interpretation.
type PaymentGateway interface {
	Charge(ctx context.Context, userID uuid.UUID, amount float64, description string) (string, error)
}

// ReservationLock serializes booking attempts on one resource (an event,
// section, or seat key) across the reserve-to-persist window. Acquire
// returns false when another holder owns the lock. Release only removes
// the lock when holder still owns it.
type ReservationLock interface {
	Acquire(ctx context.Context, resource, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, resource, holder string) error
}
