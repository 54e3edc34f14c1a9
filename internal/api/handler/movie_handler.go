package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movies-api/internal/api/metrics"
	"github.com/moviehub/movies-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for movie operations.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Create handles POST /movies.
//
// @Summary      Create a new movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  movieMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Create(c.Request().Context(), toCreateMovieInput(req))
	if err != nil {
		return err
	}

	metrics.MoviesCreatedTotal.WithLabelValues("api").Inc()

	return c.JSON(http.StatusCreated, movieMessageResponse{
		Message: "Movie successfully created",
		Data:    toMovieResponse(movie),
	})
}

// FindAll handles GET /movies.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   movieResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /movies [get]
func (h *MovieHandler) FindAll(c echo.Context) error {
	movies, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieListResponse(movies))
}

// FindOne handles GET /movies/:id.
//
// @Summary      Get a movie by ID
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  movieResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [get]
func (h *MovieHandler) FindOne(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	movie, err := h.service.FindOne(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Update handles PATCH /movies/:id.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Movie ID"
// @Param        body  body      updateMovieRequest  true  "Fields to update"
// @Success      200   {object}  movieMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), id, toUpdateMovieInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movieMessageResponse{
		Message: "Movie successfully updated",
		Data:    toMovieResponse(movie),
	})
}

// Delete handles DELETE /movies/:id.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Movie successfully deleted"})
}

// Seed handles GET /movies/seed, importing films from the external catalog.
//
// @Summary      Seed movies from the external catalog
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  seedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /movies/seed [get]
func (h *MovieHandler) Seed(c echo.Context) error {
	result, err := h.service.Seed(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.MoviesSeededTotal.Add(float64(result.Count))
	metrics.MoviesCreatedTotal.WithLabelValues("seed").Add(float64(result.Count))

	return c.JSON(http.StatusOK, seedResponse{
		Message: "Movies saved successfully",
		Count:   result.Count,
	})
}

func movieID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid movie id")
	}
	return id, nil
}
