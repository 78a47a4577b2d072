package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/domain"
)

type VenueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetByID loads the venue with its sections and their seats.
func (r *VenueRepository) GetByID(ctx context.Context, venueID uuid.UUID) (*domain.Venue, error) {
	venue := &domain.Venue{}
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, address FROM venues WHERE id = $1
	`, venueID).Scan(&venue.ID, &venue.Name, &venue.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue %s: %w", venueID, domain.ErrNotFound)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name FROM venue_sections WHERE venue_id = $1 ORDER BY name
	`, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		section := &domain.Section{VenueID: venueID}
		if err := rows.Scan(&section.ID, &section.Name); err != nil {
			return nil, err
		}
		venue.Sections = append(venue.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, section := range venue.Sections {
		if section.Seats, err = r.loadSeats(ctx, section.ID); err != nil {
			return nil, err
		}
	}

	return venue, nil
}

func (r *VenueRepository) loadSeats(ctx context.Context, sectionID uuid.UUID) ([]*domain.Seat, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, row_label, seat_number, label
	FROM venue_seats
	WHERE section_id = $1
	ORDER BY row_label, seat_number
	`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []*domain.Seat
	for rows.Next() {
		seat := &domain.Seat{SectionID: sectionID}
		if err := rows.Scan(&seat.ID, &seat.Row, &seat.Number, &seat.Label); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}
