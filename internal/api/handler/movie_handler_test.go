package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/ports"
)

type stubMovieService struct {
	createFn  func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	findAllFn func(ctx context.Context) ([]*domain.Movie, error)
	findOneFn func(ctx context.Context, id int) (*domain.Movie, error)
	updateFn  func(ctx context.Context, id int, patch ports.UpdateMovieInput) (*domain.Movie, error)
	deleteFn  func(ctx context.Context, id int) error
	seedFn    func(ctx context.Context) (*ports.SeedResult, error)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	return s.findAllFn(ctx)
}

func (s *stubMovieService) FindOne(ctx context.Context, id int) (*domain.Movie, error) {
	return s.findOneFn(ctx, id)
}

func (s *stubMovieService) Update(ctx context.Context, id int, patch ports.UpdateMovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubMovieService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func (s *stubMovieService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	return s.seedFn(ctx)
}

func newMovieContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleMovie(id int) *domain.Movie {
	return &domain.Movie{
		ID:           id,
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
	}
}

func TestMovieHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			if input.Title != "A New Hope" || input.Director != "George Lucas" {
				t.Fatalf("unexpected input: %+v", input)
			}
			m := sampleMovie(1)
			m.Title = input.Title
			return m, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodPost, "/movies",
		`{"title":"A New Hope","episode_id":4,"opening_crawl":"It is a period of civil war.","director":"George Lucas"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp movieMessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Movie successfully created" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Data.ID != 1 || resp.Data.Title != "A New Hope" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestMovieHandler_Create_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewMovieHandler(stub)

	cases := []string{
		`{"opening_crawl":"x","director":"y"}`,
		`{"title":"A New Hope","director":"y"}`,
		`{"title":"A New Hope","opening_crawl":"x"}`,
	}
	for _, body := range cases {
		c, _ := newMovieContext(e, http.MethodPost, "/movies", body)
		err := h.Create(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %s, got %v", body, err)
		}
	}
}

func TestMovieHandler_Create_DuplicatePropagates(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			return nil, domain.ErrMovieExists
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newMovieContext(e, http.MethodPost, "/movies",
		`{"title":"A New Hope","opening_crawl":"x","director":"y"}`)

	if err := h.Create(c); err != domain.ErrMovieExists {
		t.Fatalf("expected ErrMovieExists to propagate, got %v", err)
	}
}

func TestMovieHandler_FindAll_Success(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		findAllFn: func(ctx context.Context) ([]*domain.Movie, error) {
			return []*domain.Movie{sampleMovie(1), sampleMovie(2)}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodGet, "/movies", "")

	if err := h.FindAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != 1 || resp[1].ID != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMovieHandler_FindOne_Success(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		findOneFn: func(ctx context.Context, id int) (*domain.Movie, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return sampleMovie(7), nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodGet, "/movies/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.FindOne(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp movieResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 7 || resp.Title != "A New Hope" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMovieHandler_FindOne_InvalidID(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		findOneFn: func(ctx context.Context, id int) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newMovieContext(e, http.MethodGet, "/movies/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.FindOne(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMovieHandler_FindOne_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		findOneFn: func(ctx context.Context, id int) (*domain.Movie, error) {
			return nil, &domain.MovieNotFoundError{ID: id}
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newMovieContext(e, http.MethodGet, "/movies/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.FindOne(c)
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected not-found error to propagate, got %v", err)
	}
	if err.Error() != "Movie with ID 999 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestMovieHandler_Update_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubMovieService{
		updateFn: func(ctx context.Context, id int, patch ports.UpdateMovieInput) (*domain.Movie, error) {
			if id != 3 {
				t.Fatalf("unexpected id: %d", id)
			}
			if patch.Title == nil || *patch.Title != "Updated Title" {
				t.Fatalf("expected title patch, got %+v", patch)
			}
			if patch.Director != nil {
				t.Fatalf("director should be nil in a partial patch")
			}
			m := sampleMovie(3)
			m.Title = *patch.Title
			return m, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodPatch, "/movies/3", `{"title":"Updated Title"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp movieMessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Movie successfully updated" || resp.Data.Title != "Updated Title" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	deleted := 0
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodDelete, "/movies/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != 5 {
		t.Fatalf("expected delete of 5, got %d", deleted)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Movie successfully deleted" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestMovieHandler_Seed_Success(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		seedFn: func(ctx context.Context) (*ports.SeedResult, error) {
			return &ports.SeedResult{Count: 6}, nil
		},
	}
	h := NewMovieHandler(stub)

	c, rec := newMovieContext(e, http.MethodGet, "/movies/seed", "")

	if err := h.Seed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp seedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Movies saved successfully" || resp.Count != 6 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMovieHandler_Seed_FailurePropagates(t *testing.T) {
	e := echo.New()
	stub := &stubMovieService{
		seedFn: func(ctx context.Context) (*ports.SeedResult, error) {
			return nil, domain.ErrSeedFailed
		},
	}
	h := NewMovieHandler(stub)

	c, _ := newMovieContext(e, http.MethodGet, "/movies/seed", "")

	if err := h.Seed(c); !errors.Is(err, domain.ErrSeedFailed) {
		t.Fatalf("expected seed failure to propagate, got %v", err)
	}
}
