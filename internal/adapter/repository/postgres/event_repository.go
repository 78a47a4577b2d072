package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID loads the full aggregate: the event row plus its section
// allocations or seat cells, depending on the variant.
func (r *EventRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	query := `
	SELECT id, venue_id, name, event_type, starts_at, ends_at, estimated_attendance,
	       capacity, reserved, price, capacity_override, version
	FROM events
	WHERE id = $1
	`

	event := &domain.Event{}
	var reserved int
	var price sql.NullFloat64
	var override sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.VenueID,
		&event.Name,
		&event.Type,
		&event.StartsAt,
		&event.EndsAt,
		&event.EstimatedAttendance,
		&event.Capacity,
		&reserved,
		&price,
		&override,
		&event.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
		}
		return nil, err
	}

	if price.Valid {
		p := price.Float64
		event.Price = &p
	}
	if override.Valid {
		o := int(override.Int64)
		event.CapacityOverride = &o
	}

	switch event.Type {
	case domain.EventOpen:
		if err := event.RestoreReserved(reserved); err != nil {
			return nil, err
		}
	case domain.EventSectioned:
		if event.Sections, err = r.loadAllocations(ctx, eventID); err != nil {
			return nil, err
		}
	case domain.EventSeated:
		if event.Seats, err = r.loadSeatCells(ctx, eventID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("event %s: unknown event type %q", eventID, event.Type)
	}

	return event, nil
}

func (r *EventRepository) loadAllocations(ctx context.Context, eventID uuid.UUID) ([]*domain.SectionAllocation, error) {
	query := `
	SELECT section_id, section_name, capacity, booked, price, allocation_mode
	FROM event_sections
	WHERE event_id = $1
	ORDER BY section_name
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*domain.SectionAllocation
	for rows.Next() {
		var sectionID uuid.UUID
		var name string
		var capacity, booked int
		var price float64
		var mode domain.AllocationMode
		if err := rows.Scan(&sectionID, &name, &capacity, &booked, &price, &mode); err != nil {
			return nil, err
		}
		allocation, err := domain.RestoreSectionAllocation(eventID, sectionID, name, capacity, booked, price, mode)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

func (r *EventRepository) loadSeatCells(ctx context.Context, eventID uuid.UUID) ([]*domain.EventSeat, error) {
	query := `
	SELECT seat_id, label, status, version
	FROM event_seats
	WHERE event_id = $1
	ORDER BY label
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cells []*domain.EventSeat
	for rows.Next() {
		var seatID uuid.UUID
		var label string
		var status domain.SeatStatus
		var version int
		if err := rows.Scan(&seatID, &label, &status, &version); err != nil {
			return nil, err
		}
		cell, err := domain.RestoreEventSeat(eventID, seatID, label, status, version)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, rows.Err()
}

// applyEventUpdate writes a mutated aggregate inside the caller's
// transaction, so the event delta commits or rolls back together with
// whatever else the transaction carries. Every write is conditional on the
// version loaded with the aggregate (and on booked counts staying within
// capacity), so two attempts that raced the same snapshot cannot both
// commit: the loser gets domain.ErrVersionConflict and the transaction is
// rolled back whole.
func applyEventUpdate(ctx context.Context, tx *sql.Tx, event *domain.Event) error {
	var result sql.Result
	var err error
	switch event.Type {
	case domain.EventOpen:
		result, err = tx.ExecContext(ctx, `
		UPDATE events
		SET reserved = $1, version = version + 1
		WHERE id = $2 AND version = $3 AND $1 <= capacity
		`, event.TotalReserved(), event.ID, event.Version)
	default:
		result, err = tx.ExecContext(ctx, `
		UPDATE events
		SET version = version + 1
		WHERE id = $1 AND version = $2
		`, event.ID, event.Version)
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("event %s: %w", event.ID, domain.ErrVersionConflict)
	}

	switch event.Type {
	case domain.EventSectioned:
		for _, allocation := range event.Sections {
			result, err := tx.ExecContext(ctx, `
			UPDATE event_sections
			SET booked = $1
			WHERE event_id = $2 AND section_id = $3 AND $1 <= capacity
			`, allocation.Booked(), event.ID, allocation.SectionID)
			if err != nil {
				return err
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("section %s: %w", allocation.SectionID, domain.ErrVersionConflict)
			}
		}
	case domain.EventSeated:
		for _, cell := range event.Seats {
			result, err := tx.ExecContext(ctx, `
			UPDATE event_seats
			SET status = $1, version = version + 1
			WHERE event_id = $2 AND seat_id = $3 AND version = $4
			`, cell.Status(), event.ID, cell.SeatID, cell.Version)
			if err != nil {
				return err
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("seat %s: %w", cell.SeatID, domain.ErrVersionConflict)
			}
		}
	}

	return nil
}
