package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/ports"
)

// MovieService implements CRUD over the movie store plus the catalog seed.
type MovieService struct {
	repo    ports.MovieRepository
	cache   ports.MovieCache
	catalog ports.CatalogClient
	logger  zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, cache ports.MovieCache, catalog ports.CatalogClient, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, cache: cache, catalog: catalog, logger: logger}
}

func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	created, err := s.repo.Create(ctx, newMovie(input))
	if err != nil {
		if errors.Is(err, domain.ErrMovieExists) {
			return nil, domain.ErrMovieExists
		}
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create movie")
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.logger.Info().Int("id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

func (s *MovieService) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list movies")
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrMoviesNotFound
	}
	return movies, nil
}

func (s *MovieService) FindOne(ctx context.Context, id int) (*domain.Movie, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("id", id).Msg("movie cache lookup failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return nil, &domain.MovieNotFoundError{ID: id}
		}
		s.logger.Error().Err(err).Int("id", id).Msg("failed to find movie")
		return nil, fmt.Errorf("find movie: %w", err)
	}

	if err := s.cache.Set(ctx, movie); err != nil {
		s.logger.Warn().Err(err).Int("id", id).Msg("failed to cache movie")
	}
	return movie, nil
}

// Update applies a partial update. The record is read-checked first so a
// missing ID surfaces as the same typed not-found error as FindOne.
func (s *MovieService) Update(ctx context.Context, id int, patch ports.UpdateMovieInput) (*domain.Movie, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("failed to update movie")
		return nil, fmt.Errorf("update movie: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("id", id).Msg("failed to invalidate movie cache")
	}
	return updated, nil
}

func (s *MovieService) Delete(ctx context.Context, id int) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("failed to delete movie")
		return fmt.Errorf("delete movie: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int("id", id).Msg("failed to invalidate movie cache")
	}
	return nil
}

// Seed fetches the external catalog and creates each record sequentially.
// The import is best effort: a failure mid-batch is reported as a whole and
// already-created rows are not rolled back.
func (s *MovieService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	films, err := s.catalog.FetchFilms(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog fetch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrSeedFailed, err)
	}

	for _, film := range films {
		if _, err := s.repo.Create(ctx, newMovie(film)); err != nil {
			s.logger.Error().Err(err).Str("title", film.Title).Msg("seed insert failed")
			return nil, fmt.Errorf("%w: %v", domain.ErrSeedFailed, err)
		}
	}

	s.logger.Info().Int("count", len(films)).Msg("movies seeded")
	return &ports.SeedResult{Count: len(films)}, nil
}

func newMovie(in ports.CreateMovieInput) *domain.Movie {
	return &domain.Movie{
		Title:        in.Title,
		EpisodeID:    in.EpisodeID,
		OpeningCrawl: in.OpeningCrawl,
		Director:     in.Director,
		Producer:     in.Producer,
		ReleaseDate:  in.ReleaseDate,
		Characters:   in.Characters,
		Planets:      in.Planets,
		Starships:    in.Starships,
		Vehicles:     in.Vehicles,
		Species:      in.Species,
		URL:          in.URL,
	}
}
