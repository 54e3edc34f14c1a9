package ports

import (
	"context"

	"github.com/moviehub/movies-api/internal/core/domain"
)

// CreateMovieInput carries all data needed to create a new movie.
type CreateMovieInput struct {
	Title        string
	EpisodeID    int
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
	Characters   []string
	Planets      []string
	Starships    []string
	Vehicles     []string
	Species      []string
	URL          string
}

// UpdateMovieInput carries a partial update. Nil fields are left untouched.
type UpdateMovieInput struct {
	Title        *string
	EpisodeID    *int
	OpeningCrawl *string
	Director     *string
	Producer     *string
	ReleaseDate  *string
	Characters   []string
	Planets      []string
	Starships    []string
	Vehicles     []string
	Species      []string
	URL          *string
}

// SeedResult is returned by Seed with the number of catalog records fetched.
type SeedResult struct {
	Count int
}

// MovieService defines use-case operations for movies.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	FindOne(ctx context.Context, id int) (*domain.Movie, error)
	Update(ctx context.Context, id int, patch UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id int) error
	Seed(ctx context.Context) (*SeedResult, error)
}

// CatalogClient fetches movie records from the external film catalog used by
// the seed operation.
type CatalogClient interface {
	FetchFilms(ctx context.Context) ([]CreateMovieInput, error)
}
