package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinebook/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, description, duration, genre, rating, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.Genre,
		movie.Rating,
		movie.PosterUrl).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, title, description, duration, genre, rating, poster_url, created_at
		FROM movies
		ORDER BY title, id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Genre,
			&movie.Rating,
			&movie.PosterUrl,
			&movie.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, description, duration, genre, rating, poster_url, created_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.Genre,
		&movie.Rating,
		&movie.PosterUrl,
		&movie.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

// Delete removes a movie; its shows and their seats go with it through the
// foreign key cascade.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	ct, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
