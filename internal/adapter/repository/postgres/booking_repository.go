package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create writes the booking header, its items and the mutated event
// aggregate in one transaction. When the event's conditional writes lose a
// concurrent race the whole transaction rolls back, booking included, and
// the error wraps domain.ErrVersionConflict.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking, event *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headerQuery := `
	INSERT INTO bookings (id, user_id, event_id, kind, payment_status, total_amount, transaction_ref, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, headerQuery,
		booking.ID, booking.UserID, booking.EventID, booking.Kind,
		booking.PaymentStatus, booking.TotalAmount, booking.TransactionRef, booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking header: %w", err)
	}

	itemQuery := `
	INSERT INTO booking_items (id, booking_id, quantity, unit_price, seat_id, section_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	stmt, err := tx.PrepareContext(ctx, itemQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range booking.Items {
		_, err := stmt.ExecContext(ctx, item.ID, item.BookingID, item.Quantity, item.UnitPrice,
			uuidOrNil(item.SeatID), uuidOrNil(item.SectionID))
		if err != nil {
			return fmt.Errorf("failed to insert booking item %s: %w", item.ID, err)
		}
	}

	if err := applyEventUpdate(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit()
}

// CountActiveByUser counts the user's paid bookings, feeding the
// booking-limit rule.
func (r *BookingRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
	SELECT COUNT(*) FROM bookings
	WHERE user_id = $1 AND payment_status = 'PAID'
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
