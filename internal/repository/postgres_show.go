package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinebook/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `INSERT INTO shows (movie_id, show_time, screen_number, total_seats, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		show.MovieID,
		show.ShowTime,
		show.ScreenNumber,
		show.TotalSeats,
		show.Price).Scan(&show.ID, &show.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `SELECT id, movie_id, show_time, screen_number, total_seats, price, created_at
		FROM shows
		WHERE id = $1`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.ShowTime,
		&show.ScreenNumber,
		&show.TotalSeats,
		&show.Price,
		&show.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) GetUpcomingByMovie(ctx context.Context, movieID int) ([]domain.Show, error) {
	query := `
		SELECT id, movie_id, show_time, screen_number, total_seats, price, created_at
		FROM shows
		WHERE movie_id = $1 AND show_time > now()
		ORDER BY show_time
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.ShowTime,
			&show.ScreenNumber,
			&show.TotalSeats,
			&show.Price,
			&show.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}
