package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/ports/mocks"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/services"
)

type stubRule struct {
	err   error
	calls *int
}

func (r stubRule) Check(_ context.Context, _ *domain.User, _ *domain.Event, _ services.ReservationRequest) error {
	if r.calls != nil {
		*r.calls++
	}
	return r.err
}

func testUser() *domain.User {
	return &domain.User{ID: uuid.New(), FullName: "Ada Lovelace", Email: "ada@example.com"}
}

func futureOpenEvent(t *testing.T, capacity int) *domain.Event {
	t.Helper()
	event, err := domain.NewOpenEvent(
		uuid.New(), "Summer Gala",
		time.Now().Add(24*time.Hour), time.Now().Add(30*time.Hour),
		capacity, nil,
	)
	require.NoError(t, err)
	return event
}

func TestPipeline_FirstFailureWins(t *testing.T) {
	first := stubRule{err: errors.New("first rejection")}
	secondCalls := 0
	second := stubRule{err: errors.New("second rejection"), calls: &secondCalls}

	pipeline := services.NewRulePipeline(first, second)
	err := pipeline.Run(context.Background(), testUser(), futureOpenEvent(t, 10), services.ReservationRequest{})

	require.Error(t, err)
	assert.EqualError(t, err, "first rejection")
	assert.Zero(t, secondCalls, "pipeline must short-circuit")

	// Registration order decides which message the user sees.
	pipeline = services.NewRulePipeline(second, first)
	err = pipeline.Run(context.Background(), testUser(), futureOpenEvent(t, 10), services.ReservationRequest{})
	assert.EqualError(t, err, "second rejection")
}

func TestPipeline_AllPass(t *testing.T) {
	pipeline := services.NewRulePipeline(stubRule{}, stubRule{})

	err := pipeline.Run(context.Background(), testUser(), futureOpenEvent(t, 10), services.ReservationRequest{})

	assert.NoError(t, err)
}

func TestBookingLimitRule(t *testing.T) {
	user := testUser()
	repo := mocks.NewBookingRepository(t)
	repo.On("CountActiveByUser", mock.Anything, user.ID).Return(3, nil).Once()

	rule := services.NewBookingLimitRule(repo, 3)
	err := rule.Check(context.Background(), user, futureOpenEvent(t, 10), services.ReservationRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Booking limit of 3 reached")

	repo.On("CountActiveByUser", mock.Anything, user.ID).Return(2, nil).Once()
	assert.NoError(t, rule.Check(context.Background(), user, futureOpenEvent(t, 10), services.ReservationRequest{}))
}

func TestEventAvailabilityRule_AlreadyStarted(t *testing.T) {
	event := futureOpenEvent(t, 10)
	rule := services.NewEventAvailabilityRule(func() time.Time { return event.StartsAt.Add(time.Minute) })

	err := rule.Check(context.Background(), testUser(), event, services.ReservationRequest{})

	require.Error(t, err)
	assert.EqualError(t, err, "Event 'Summer Gala' has already started")
}

func TestEventAvailabilityRule_SoldOut(t *testing.T) {
	event := futureOpenEvent(t, 1)
	require.NoError(t, event.Reserve(1))
	rule := services.NewEventAvailabilityRule(nil)

	err := rule.Check(context.Background(), testUser(), event, services.ReservationRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestProfileCompleteRule(t *testing.T) {
	rule := services.NewProfileCompleteRule()

	incomplete := &domain.User{ID: uuid.New(), FullName: "No Mail"}
	err := rule.Check(context.Background(), incomplete, futureOpenEvent(t, 10), services.ReservationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact email")

	assert.NoError(t, rule.Check(context.Background(), testUser(), futureOpenEvent(t, 10), services.ReservationRequest{}))
}
