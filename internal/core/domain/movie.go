package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrMovieExists = errors.New("Movie already exists")
var ErrMoviesNotFound = errors.New("Movies not found")
var ErrSeedFailed = errors.New("Failed to fetch and save movies")

// ErrMovieNotFound is the kind matched with errors.Is; the concrete value
// returned by lookups is *MovieNotFoundError, which carries the ID.
var ErrMovieNotFound = errors.New("movie not found")

// MovieNotFoundError reports a lookup miss for a specific movie ID.
type MovieNotFoundError struct {
	ID int
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("Movie with ID %d not found", e.ID)
}

func (e *MovieNotFoundError) Is(target error) bool {
	return target == ErrMovieNotFound
}

// Movie is a catalog entry. The field set mirrors the external film catalog
// the seed endpoint imports from, so seeded and hand-created records share
// one shape.
type Movie struct {
	ID           int       `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	EpisodeID    int       `json:"episode_id" bson:"episode_id"`
	OpeningCrawl string    `json:"opening_crawl" bson:"opening_crawl"`
	Director     string    `json:"director" bson:"director"`
	Producer     string    `json:"producer,omitempty" bson:"producer,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty" bson:"release_date,omitempty"`
	Characters   []string  `json:"characters,omitempty" bson:"characters,omitempty"`
	Planets      []string  `json:"planets,omitempty" bson:"planets,omitempty"`
	Starships    []string  `json:"starships,omitempty" bson:"starships,omitempty"`
	Vehicles     []string  `json:"vehicles,omitempty" bson:"vehicles,omitempty"`
	Species      []string  `json:"species,omitempty" bson:"species,omitempty"`
	URL          string    `json:"url,omitempty" bson:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
