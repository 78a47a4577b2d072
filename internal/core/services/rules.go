package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/ports"
)

// ReservationRequest is what a user asks for: a quantity against an event,
// optionally narrowed to one section or one seat. Which selector is
// required depends on the event variant; the dispatcher enforces that.
type ReservationRequest struct {
	UserID    uuid.UUID
	EventID   uuid.UUID
	Quantity  int
	SectionID *uuid.UUID
	SeatID    *uuid.UUID
}

// BookingRule is one independent pre-booking check. Rules never mutate
// anything; a non-nil error is the user-facing rejection.
type BookingRule interface {
	Check(ctx context.Context, user *domain.User, event *domain.Event, req ReservationRequest) error
}

// RulePipeline runs rules in registration order and stops at the first
// failure, so the same failing conditions always produce the same message.
// Extending the pipeline means appending a rule at construction time.
type RulePipeline struct {
	rules []BookingRule
}

func NewRulePipeline(rules ...BookingRule) *RulePipeline {
	return &RulePipeline{rules: rules}
}

func (p *RulePipeline) Run(ctx context.Context, user *domain.User, event *domain.Event, req ReservationRequest) error {
	for _, rule := range p.rules {
		if err := rule.Check(ctx, user, event, req); err != nil {
			return err
		}
	}
	return nil
}

// BookingLimitRule caps how many active bookings one user may hold.
type BookingLimitRule struct {
	bookings ports.BookingRepository
	max      int
}

func NewBookingLimitRule(bookings ports.BookingRepository, max int) *BookingLimitRule {
	return &BookingLimitRule{bookings: bookings, max: max}
}

func (r *BookingLimitRule) Check(ctx context.Context, user *domain.User, _ *domain.Event, _ ReservationRequest) error {
	count, err := r.bookings.CountActiveByUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("could not check booking limit: %w", err)
	}
	if count >= r.max {
		return fmt.Errorf("Booking limit of %d reached for user '%s'", r.max, user.FullName)
	}
	return nil
}

// EventAvailabilityRule rejects events that already started or sold out.
type EventAvailabilityRule struct {
	now func() time.Time
}

func NewEventAvailabilityRule(now func() time.Time) *EventAvailabilityRule {
	if now == nil {
		now = time.Now
	}
	return &EventAvailabilityRule{now: now}
}

func (r *EventAvailabilityRule) Check(_ context.Context, _ *domain.User, event *domain.Event, _ ReservationRequest) error {
	if event.HasStarted(r.now()) {
		return fmt.Errorf("Event '%s' has already started", event.Name)
	}
	if event.IsSoldOut() {
		return domain.SoldOutError{EventName: event.Name}
	}
	return nil
}

// ProfileCompleteRule requires a contactable user profile.
type ProfileCompleteRule struct{}

func NewProfileCompleteRule() *ProfileCompleteRule {
	return &ProfileCompleteRule{}
}

func (r *ProfileCompleteRule) Check(_ context.Context, user *domain.User, _ *domain.Event, _ ReservationRequest) error {
	if !user.HasCompleteProfile() {
		return fmt.Errorf("User profile is incomplete: a contact email is required")
	}
	return nil
}
