package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genre       string
	Rating      string
	PosterUrl   string
	CreatedAt   time.Time
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
