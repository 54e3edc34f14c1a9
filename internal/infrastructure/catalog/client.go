// Package catalog fetches movie records from the external film catalog the
// seed endpoint imports from. The catalog returns a paginated envelope whose
// results array carries one record per film.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/moviehub/movies-api/internal/core/ports"
)

const defaultFetchTimeout = 15 * time.Second

// Client is an HTTP client for the film catalog.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: defaultFetchTimeout},
	}
}

type filmRecord struct {
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
	URL          string   `json:"url"`
}

type filmsEnvelope struct {
	Count   int          `json:"count"`
	Results []filmRecord `json:"results"`
}

// FetchFilms retrieves and decodes the catalog's film list.
func (c *Client) FetchFilms(ctx context.Context) ([]ports.CreateMovieInput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}

	var envelope filmsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}

	films := make([]ports.CreateMovieInput, 0, len(envelope.Results))
	for _, rec := range envelope.Results {
		films = append(films, ports.CreateMovieInput{
			Title:        rec.Title,
			EpisodeID:    rec.EpisodeID,
			OpeningCrawl: rec.OpeningCrawl,
			Director:     rec.Director,
			Producer:     rec.Producer,
			ReleaseDate:  rec.ReleaseDate,
			Characters:   rec.Characters,
			Planets:      rec.Planets,
			Starships:    rec.Starships,
			Vehicles:     rec.Vehicles,
			Species:      rec.Species,
			URL:          rec.URL,
		})
	}
	return films, nil
}
