package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingKind string

const (
	BookingOpen    BookingKind = "OPEN"
	BookingSection BookingKind = "SECTION"
	BookingSeat    BookingKind = "SEAT"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

// Booking records one confirmed (or attempted) reservation. It is built by
// the orchestrator after the in-memory reservation succeeded and its payment
// status moves exactly once, PENDING -> PAID or PENDING -> FAILED; refunds
// are a separate flow.
type Booking struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	EventID        uuid.UUID
	Kind           BookingKind
	PaymentStatus  PaymentStatus
	TotalAmount    float64
	TransactionRef string
	CreatedAt      time.Time
	Items          []BookingItem
}

func NewBooking(id, userID, eventID uuid.UUID, kind BookingKind, totalAmount float64) *Booking {
	return &Booking{
		ID:            id,
		UserID:        userID,
		EventID:       eventID,
		Kind:          kind,
		PaymentStatus: PaymentPending,
		TotalAmount:   totalAmount,
		CreatedAt:     time.Now(),
	}
}

// MarkPaid records a successful charge. Only a pending booking can be paid.
func (b *Booking) MarkPaid(transactionRef string) {
	if b.PaymentStatus != PaymentPending {
		panic(fmt.Sprintf("MarkPaid on booking %s: payment status already %s", b.ID, b.PaymentStatus))
	}
	b.PaymentStatus = PaymentPaid
	b.TransactionRef = transactionRef
}

// MarkFailed records a declined charge. Only a pending booking can fail.
func (b *Booking) MarkFailed() {
	if b.PaymentStatus != PaymentPending {
		panic(fmt.Sprintf("MarkFailed on booking %s: payment status already %s", b.ID, b.PaymentStatus))
	}
	b.PaymentStatus = PaymentFailed
}

// BookingItem is one line of a booking. It references at most one of a
// seat cell or a section allocation; open-capacity lines reference neither
// and carry only a quantity. Setting both is a construction bug, not a
// business condition, so NewBookingItem panics on it.
type BookingItem struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Quantity  int
	UnitPrice float64
	SeatID    *uuid.UUID
	SectionID *uuid.UUID
}

func NewBookingItem(bookingID uuid.UUID, quantity int, unitPrice float64, seatID, sectionID *uuid.UUID) BookingItem {
	if seatID != nil && sectionID != nil {
		panic(fmt.Sprintf("booking item for booking %s: seat and section references are mutually exclusive", bookingID))
	}
	if quantity <= 0 {
		panic(fmt.Sprintf("booking item for booking %s: quantity %d must be positive", bookingID, quantity))
	}
	return BookingItem{
		ID:        uuid.New(),
		BookingID: bookingID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		SeatID:    seatID,
		SectionID: sectionID,
	}
}
