package handler

import "time"

// --- Request types ---

type createMovieRequest struct {
	Title        string   `json:"title"         validate:"required"`
	EpisodeID    int      `json:"episode_id"    validate:"omitempty,gt=0"`
	OpeningCrawl string   `json:"opening_crawl" validate:"required"`
	Director     string   `json:"director"      validate:"required"`
	Producer     string   `json:"producer"      validate:"omitempty"`
	ReleaseDate  string   `json:"release_date"  validate:"omitempty"`
	Characters   []string `json:"characters"    validate:"omitempty,dive,required"`
	Planets      []string `json:"planets"       validate:"omitempty,dive,required"`
	Starships    []string `json:"starships"     validate:"omitempty,dive,required"`
	Vehicles     []string `json:"vehicles"      validate:"omitempty,dive,required"`
	Species      []string `json:"species"       validate:"omitempty,dive,required"`
	URL          string   `json:"url"           validate:"omitempty"`
}

// updateMovieRequest is a partial body; absent fields stay untouched.
type updateMovieRequest struct {
	Title        *string  `json:"title"         validate:"omitempty,min=1"`
	EpisodeID    *int     `json:"episode_id"    validate:"omitempty,gt=0"`
	OpeningCrawl *string  `json:"opening_crawl" validate:"omitempty,min=1"`
	Director     *string  `json:"director"      validate:"omitempty,min=1"`
	Producer     *string  `json:"producer"      validate:"omitempty"`
	ReleaseDate  *string  `json:"release_date"  validate:"omitempty"`
	Characters   []string `json:"characters"    validate:"omitempty,dive,required"`
	Planets      []string `json:"planets"       validate:"omitempty,dive,required"`
	Starships    []string `json:"starships"     validate:"omitempty,dive,required"`
	Vehicles     []string `json:"vehicles"      validate:"omitempty,dive,required"`
	Species      []string `json:"species"       validate:"omitempty,dive,required"`
	URL          *string  `json:"url"           validate:"omitempty"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type movieResponse struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	EpisodeID    int       `json:"episode_id"`
	OpeningCrawl string    `json:"opening_crawl"`
	Director     string    `json:"director"`
	Producer     string    `json:"producer,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	Characters   []string  `json:"characters,omitempty"`
	Planets      []string  `json:"planets,omitempty"`
	Starships    []string  `json:"starships,omitempty"`
	Vehicles     []string  `json:"vehicles,omitempty"`
	Species      []string  `json:"species,omitempty"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type movieMessageResponse struct {
	Message string        `json:"message"`
	Data    movieResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type seedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
