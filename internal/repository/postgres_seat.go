package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinebook/internal/domain"
)

// Advisory lock class for seat provisioning. The second lock key is the show
// ID, so concurrent first accesses to the same show serialize while different
// shows provision independently.
const seatProvisionLockClass = 4201

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) EnsureProvisioned(ctx context.Context, showID int) ([]domain.Seat, error) {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var totalSeats int

		err := tx.QueryRow(ctx, `SELECT total_seats FROM shows WHERE id = $1`, showID).Scan(&totalSeats)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		// Held until commit, so a concurrent first access waits here and
		// then sees the seats we inserted instead of inserting its own.
		_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, seatProvisionLockClass, showID)
		if err != nil {
			return err
		}

		var count int

		err = tx.QueryRow(ctx, `SELECT count(*) FROM seats WHERE show_id = $1`, showID).Scan(&count)
		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		grid := domain.NewSeatGrid(totalSeats)

		rows := make([][]any, 0, len(grid))
		for _, pos := range grid {
			rows = append(rows, []any{showID, pos.SeatNumber, pos.Row, pos.Col})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"show_id", "seat_number", "seat_row", "seat_col"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		return nil, err
	}

	return p.GetByShow(ctx, showID)
}

func (p *PostgresSeatRepository) GetByShow(ctx context.Context, showID int) ([]domain.Seat, error) {
	// A seat is unavailable only while it is claimed by a confirmed
	// booking. Pending and cancelled bookings never reduce availability.
	query := `
		SELECT
			se.id,
			se.show_id,
			se.seat_number,
			se.seat_row,
			se.seat_col,
			se.booking_id,
			(b.id IS NULL OR b.status <> 'confirmed') AS available
		FROM seats se
		LEFT JOIN bookings b ON se.booking_id = b.id
		WHERE se.show_id = $1
		ORDER BY se.seat_row, se.seat_col
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.ShowID,
			&seat.SeatNumber,
			&seat.Row,
			&seat.Col,
			&seat.BookingID,
			&seat.Available,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
