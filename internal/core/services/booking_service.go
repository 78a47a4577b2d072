package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/ports"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/platform/logger"
)

// CreateBookingRequest is the one command this engine exposes. SectionID
// and SeatID are optional; which one is required depends on the event
// variant.
type CreateBookingRequest struct {
	UserID    string `json:"user_id"`
	EventID   string `json:"event_id"`
	Quantity  int    `json:"quantity"`
	SectionID string `json:"section_id,omitempty"`
	SeatID    string `json:"seat_id,omitempty"`
}

// CreateBookingResult is the single observable outcome of a booking
// attempt. Business rejections come back with Success false and the
// rejection message; they are not errors.
type CreateBookingResult struct {
	Success     bool    `json:"success"`
	BookingID   string  `json:"booking_id,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
	Message     string  `json:"message"`
}

func failure(message string) CreateBookingResult {
	return CreateBookingResult{Success: false, Message: message}
}

// BookingService runs one booking attempt end to end:
// load -> validate -> reserve (against a clone) -> pay -> persist booking ->
// commit event state. Any failure short-circuits the rest; nothing is
// persisted unless payment succeeded, and the mutated clone is simply
// discarded on the way out.
type BookingService struct {
	users    ports.UserRepository
	venues   ports.VenueRepository
	events   ports.EventRepository
	bookings ports.BookingRepository
	payments ports.PaymentGateway
	pipeline *RulePipeline

	// locks is optional; when set, a per-resource lock is held across the
	// reserve-to-commit window so concurrent attempts on the same
	// inventory serialize instead of racing the persistence layer.
	locks   ports.ReservationLock
	lockTTL time.Duration

	log *logger.Logger
}

func NewBookingService(
	users ports.UserRepository,
	venues ports.VenueRepository,
	events ports.EventRepository,
	bookings ports.BookingRepository,
	payments ports.PaymentGateway,
	pipeline *RulePipeline,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		users:    users,
		venues:   venues,
		events:   events,
		bookings: bookings,
		payments: payments,
		pipeline: pipeline,
		lockTTL:  30 * time.Second,
		log:      log,
	}
}

// WithReservationLock enables per-resource locking across reserve->commit.
func (s *BookingService) WithReservationLock(locks ports.ReservationLock, ttl time.Duration) *BookingService {
	s.locks = locks
	if ttl > 0 {
		s.lockTTL = ttl
	}
	return s
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) CreateBookingResult {
	resReq, result, ok := s.parseRequest(req)
	if !ok {
		return result
	}

	// Step 1: load collaborating aggregates. Each miss is terminal.
	user, err := s.users.GetByID(ctx, resReq.UserID)
	if err != nil {
		return s.lookupFailure("User", err)
	}
	event, err := s.events.GetByID(ctx, resReq.EventID)
	if err != nil {
		return s.lookupFailure("Event", err)
	}
	if _, err := s.venues.GetByID(ctx, event.VenueID); err != nil {
		return s.lookupFailure("Venue", err)
	}

	// Step 2: business rules, first failure verbatim.
	if err := s.pipeline.Run(ctx, user, event, resReq); err != nil {
		s.logInfo("BOOKING", fmt.Sprintf("rejected by rule: %v", err))
		return failure(err.Error())
	}

	// Steps 3-7 run under the reservation lock when one is configured.
	holder := uuid.NewString()
	if s.locks != nil {
		resource := lockResource(event, resReq)
		acquired, err := s.locks.Acquire(ctx, resource, holder, s.lockTTL)
		if err != nil {
			s.logError("LOCK", fmt.Sprintf("acquire %s: %v", resource, err))
			return failure("Could not acquire reservation lock")
		}
		if !acquired {
			return failure("Another booking for this event is in progress")
		}
		defer s.locks.Release(context.WithoutCancel(ctx), resource, holder)
	}

	// Step 3: speculative reservation against a clone. The clone is only
	// ever persisted after payment succeeds; on any failure below it is
	// dropped and the stored aggregate stays untouched.
	proposed := event.Clone()
	outcome, err := ReserveCapacity(proposed, resReq)
	if err != nil {
		return failure(err.Error())
	}

	// Step 4: construct the booking reflecting the reservation.
	booking := domain.NewBooking(uuid.New(), user.ID, event.ID, outcome.Kind, outcome.TotalAmount())
	booking.Items = []domain.BookingItem{
		domain.NewBookingItem(booking.ID, outcome.Quantity, outcome.UnitPrice, outcome.SeatID, outcome.SectionID),
	}

	// Step 5: charge. A decline is surfaced with the gateway's reason and
	// nothing is persisted. A cancelled request must not capture a payment
	// it will never record, so cancellation is checked first.
	if ctx.Err() != nil {
		return failure("Booking cancelled before completion")
	}
	description := fmt.Sprintf("Booking for event '%s'", event.Name)
	txRef, err := s.payments.Charge(ctx, user.ID, booking.TotalAmount, description)
	if err != nil {
		booking.MarkFailed()
		s.logWarn("PAYMENT", fmt.Sprintf("declined for user %s: %v", user.ID, err))
		return failure(fmt.Sprintf("Payment failed: %v", err))
	}
	booking.MarkPaid(txRef)

	// Steps 6+7: persist the booking and commit the reserved capacity as
	// one atomic write. A paid booking is never durable without its
	// capacity delta, and losing a concurrent race rolls back both. The
	// charge is already captured, so cancellation no longer aborts; the
	// write runs to completion.
	if err := s.bookings.Create(context.WithoutCancel(ctx), booking, proposed); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			s.logWarn("BOOKING", fmt.Sprintf("commit event %s: %v", event.ID, err))
			return failure("Failed to update event availability")
		}
		s.logError("BOOKING", fmt.Sprintf("persist booking %s: %v", booking.ID, err))
		return failure("Failed to create booking")
	}

	s.logInfo("BOOKING", fmt.Sprintf("booking %s confirmed for event '%s', total %.2f", booking.ID, event.Name, booking.TotalAmount))

	// Step 8: respond.
	return CreateBookingResult{
		Success:     true,
		BookingID:   booking.ID.String(),
		TotalAmount: booking.TotalAmount,
		Message:     "Booking confirmed",
	}
}

func (s *BookingService) parseRequest(req CreateBookingRequest) (ReservationRequest, CreateBookingResult, bool) {
	var resReq ReservationRequest

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return resReq, failure("Invalid user ID"), false
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return resReq, failure("Invalid event ID"), false
	}
	resReq = ReservationRequest{
		UserID:   userID,
		EventID:  eventID,
		Quantity: req.Quantity,
	}
	if req.SectionID != "" {
		sectionID, err := uuid.Parse(req.SectionID)
		if err != nil {
			return resReq, failure("Invalid section ID"), false
		}
		resReq.SectionID = &sectionID
	}
	if req.SeatID != "" {
		seatID, err := uuid.Parse(req.SeatID)
		if err != nil {
			return resReq, failure("Invalid seat ID"), false
		}
		resReq.SeatID = &seatID
	}
	return resReq, CreateBookingResult{}, true
}

func (s *BookingService) lookupFailure(entity string, err error) CreateBookingResult {
	if errors.Is(err, domain.ErrNotFound) {
		return failure(entity + " not found")
	}
	s.logError("LOOKUP", fmt.Sprintf("load %s: %v", entity, err))
	return failure("Failed to load " + entity)
}

// lockResource picks the narrowest key the request allows so unrelated
// bookings on the same event do not serialize needlessly.
func lockResource(event *domain.Event, req ReservationRequest) string {
	switch {
	case event.Type == domain.EventSeated && req.SeatID != nil:
		return "seat:" + req.SeatID.String()
	case event.Type == domain.EventSectioned && req.SectionID != nil:
		return "section:" + req.SectionID.String()
	default:
		return "event:" + event.ID.String()
	}
}

func (s *BookingService) logInfo(category, message string) {
	if s.log != nil {
		s.log.Info(category, message)
	}
}

func (s *BookingService) logWarn(category, message string) {
	if s.log != nil {
		s.log.Warn(category, message)
	}
}

func (s *BookingService) logError(category, message string) {
	if s.log != nil {
		s.log.Error(category, message)
	}
}
