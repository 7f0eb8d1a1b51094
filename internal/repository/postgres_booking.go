package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cinebook/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create runs the whole check-and-claim sequence in one transaction. The
// requested seat rows are locked with SELECT ... FOR UPDATE before the
// availability check, so of two concurrent attempts on an overlapping seat
// set one blocks until the other commits and then observes the claim. Either
// every requested seat transitions to the new booking or none do.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	seatIDs = dedupe(seatIDs)

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var price pgtype.Numeric

		err := tx.QueryRow(ctx, `SELECT price FROM shows WHERE id = $1`, booking.ShowID).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query := `
			SELECT id, seat_number, booking_id
			FROM seats
			WHERE show_id = $1 AND id = ANY($2)
			ORDER BY seat_row, seat_col
			FOR UPDATE
		`

		rows, err := tx.Query(ctx, query, booking.ShowID, seatIDs)
		if err != nil {
			return err
		}
		defer rows.Close()

		type lockedSeat struct {
			id         int
			seatNumber string
			bookingID  *int
		}

		lockedSeats := make([]lockedSeat, 0, len(seatIDs))

		for rows.Next() {
			var seat lockedSeat

			err := rows.Scan(&seat.id, &seat.seatNumber, &seat.bookingID)
			if err != nil {
				return err
			}

			lockedSeats = append(lockedSeats, seat)
		}

		if err = rows.Err(); err != nil {
			return err
		}

		if len(lockedSeats) != len(seatIDs) {
			return domain.ErrSeatNotInShow
		}

		for _, seat := range lockedSeats {
			if seat.bookingID != nil {
				return domain.SeatConflictError{SeatNumber: seat.seatNumber}
			}
		}

		total := domain.NumericToDecimal(price).Mul(decimal.NewFromInt(int64(len(lockedSeats))))

		err = tx.QueryRow(ctx,
			`INSERT INTO bookings (reference, user_id, show_id, total_amount, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`,
			booking.Reference,
			booking.UserID,
			booking.ShowID,
			total.StringFixed(2),
			booking.Status).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ErrRecordNotFound
			}

			return err
		}

		ct, err := tx.Exec(ctx,
			`UPDATE seats SET booking_id = $1 WHERE id = ANY($2) AND booking_id IS NULL`,
			booking.ID, seatIDs)
		if err != nil {
			return err
		}

		if int(ct.RowsAffected()) != len(seatIDs) {
			// The FOR UPDATE locks make this unreachable, but a partial
			// claim must never commit.
			return domain.ErrEditConflict
		}

		booking.TotalAmount = total

		booking.SeatNumbers = make([]string, 0, len(lockedSeats))
		for _, seat := range lockedSeats {
			booking.SeatNumbers = append(booking.SeatNumbers, seat.seatNumber)
		}

		return nil
	})
}

func (p *PostgresBookingRepository) GetByIdAndUserId(
	ctx context.Context,
	bookingID,
	userID int) (*domain.BookingDetail, error) {

	query := `
		SELECT
			b.id,
			b.reference,
			m.title,
			s.show_time,
			s.screen_number,
			b.total_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		WHERE b.id = $1 AND b.user_id = $2
	`

	var detail domain.BookingDetail
	var totalAmount pgtype.Numeric

	err := p.db.QueryRow(ctx, query, bookingID, userID).Scan(
		&detail.BookingID,
		&detail.Reference,
		&detail.MovieTitle,
		&detail.ShowTime,
		&detail.ScreenNumber,
		&totalAmount,
		&detail.Status,
		&detail.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.TotalAmount = domain.NumericToDecimal(totalAmount)

	seatNumbers, err := p.retrieveSeatNumbers(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	detail.SeatNumbers = seatNumbers

	return &detail, nil
}

func (p *PostgresBookingRepository) retrieveSeatNumbers(ctx context.Context, bookingID int) ([]string, error) {
	query := `
		SELECT seat_number
		FROM seats
		WHERE booking_id = $1
		ORDER BY seat_row, seat_col
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatNumbers := make([]string, 0)

	for rows.Next() {
		var seatNumber string

		if err := rows.Scan(&seatNumber); err != nil {
			return nil, err
		}

		seatNumbers = append(seatNumbers, seatNumber)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seatNumbers, nil
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			count(*) OVER(),
			b.id,
			b.reference,
			m.title,
			s.show_time,
			s.screen_number,
			b.total_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary
		var totalAmount pgtype.Numeric

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.MovieTitle,
			&booking.ShowTime,
			&booking.ScreenNumber,
			&totalAmount,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		booking.TotalAmount = domain.NumericToDecimal(totalAmount)

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

// Cancel releases the booking's seats back to available and marks the
// booking cancelled, atomically. Cancellation is rejected once the show has
// started.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID, userID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT b.status, s.show_time
			FROM bookings b
			JOIN shows s ON b.show_id = s.id
			WHERE b.id = $1 AND b.user_id = $2
			FOR UPDATE OF b
		`

		var status domain.BookingStatus
		var showTime time.Time

		err := tx.QueryRow(ctx, query, bookingID, userID).Scan(&status, &showTime)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if status == domain.BookingStatusCancelled {
			return domain.ErrBookingAlreadyCancelled
		}

		if !showTime.After(time.Now()) {
			return domain.ErrShowAlreadyStarted
		}

		_, err = tx.Exec(ctx, `UPDATE bookings SET status = 'cancelled' WHERE id = $1`, bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE seats SET booking_id = NULL WHERE booking_id = $1`, bookingID)

		return err
	})
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
