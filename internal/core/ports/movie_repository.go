package ports

import (
	"context"

	"github.com/moviehub/movies-api/internal/core/domain"
)

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	FindByID(ctx context.Context, id int) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, id int, patch UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id int) error
}

// MovieCache is a read-through cache in front of single-movie lookups.
// Implementations must treat failures as misses; the service degrades to the
// repository when the cache is unavailable.
type MovieCache interface {
	Get(ctx context.Context, id int) (*domain.Movie, error)
	Set(ctx context.Context, m *domain.Movie) error
	Invalidate(ctx context.Context, id int) error
}
