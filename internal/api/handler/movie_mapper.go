package handler

import (
	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateMovieInput(req createMovieRequest) ports.CreateMovieInput {
	return ports.CreateMovieInput{
		Title:        req.Title,
		EpisodeID:    req.EpisodeID,
		OpeningCrawl: req.OpeningCrawl,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
		Characters:   req.Characters,
		Planets:      req.Planets,
		Starships:    req.Starships,
		Vehicles:     req.Vehicles,
		Species:      req.Species,
		URL:          req.URL,
	}
}

func toUpdateMovieInput(req updateMovieRequest) ports.UpdateMovieInput {
	return ports.UpdateMovieInput{
		Title:        req.Title,
		EpisodeID:    req.EpisodeID,
		OpeningCrawl: req.OpeningCrawl,
		Director:     req.Director,
		Producer:     req.Producer,
		ReleaseDate:  req.ReleaseDate,
		Characters:   req.Characters,
		Planets:      req.Planets,
		Starships:    req.Starships,
		Vehicles:     req.Vehicles,
		Species:      req.Species,
		URL:          req.URL,
	}
}

// --- Domain → HTTP response ---

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:           m.ID,
		Title:        m.Title,
		EpisodeID:    m.EpisodeID,
		OpeningCrawl: m.OpeningCrawl,
		Director:     m.Director,
		Producer:     m.Producer,
		ReleaseDate:  m.ReleaseDate,
		Characters:   m.Characters,
		Planets:      m.Planets,
		Starships:    m.Starships,
		Vehicles:     m.Vehicles,
		Species:      m.Species,
		URL:          m.URL,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toMovieListResponse(movies []*domain.Movie) []movieResponse {
	out := make([]movieResponse, len(movies))
	for i, m := range movies {
		out[i] = toMovieResponse(m)
	}
	return out
}
