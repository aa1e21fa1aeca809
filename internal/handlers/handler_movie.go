package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movieHandler handles HTTP requests related to the movie catalogue.
type movieHandler struct {
	movieService portssvc.MovieSvcFacade
}

// newMovieHandler creates a new movieHandler.
func newMovieHandler(ms portssvc.MovieSvcFacade) *movieHandler {
	return &movieHandler{movieService: ms}
}

// registerMovieRoutes registers routes related to the movie catalogue.
func registerMovieRoutes(rg *gin.RouterGroup, movieService portssvc.MovieSvcFacade) {
	h := newMovieHandler(movieService)

	movies := rg.Group("/movies")
	{
		movies.POST("", h.createMovie)
		movies.GET("", h.listMovies)
		movies.GET("/filter", h.filterMovies)
		movies.GET("/:movieID", h.getMovie)
		movies.PUT("/:movieID", h.updateMovie)
		movies.DELETE("/:movieID", h.deleteMovie)
	}
}

// createMovie godoc
// @Summary Add a movie to the catalogue
// @Description Adds a new movie with its genre, rating and rental price
// @Tags movies
// @Accept  json
// @Produce  json
// @Param   movie body dto.CreateMovieRequest true "Movie details"
// @Success 201 {object} dto.MovieResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Movie already exists"
// @Failure 500 {object} map[string]string "Failed to create movie"
// @Router /movies [post]
func (h *movieHandler) createMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovie", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdMovie, err := h.movieService.CreateMovie(c.Request.Context(), req, middleware.GetActorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate movie", slog.String("title", req.Title))
			c.JSON(http.StatusConflict, gin.H{"error": "Movie already exists"})
		} else {
			logger.Error("Failed to create movie in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movie"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovieResponse(createdMovie))
}

// getMovie godoc
// @Summary Get a movie by ID
// @Description Retrieves details for a specific movie
// @Tags movies
// @Produce  json
// @Param   movieID path string true "Movie ID"
// @Success 200 {object} dto.MovieResponse
// @Failure 404 {object} map[string]string "Movie not found"
// @Failure 500 {object} map[string]string "Failed to retrieve movie"
// @Router /movies/{movieID} [get]
func (h *movieHandler) getMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movieID := c.Param("movieID")

	movie, err := h.movieService.GetMovieByID(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Movie not found", slog.String("movie_id", movieID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		} else {
			logger.Error("Failed to get movie from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movie"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

// listMovies godoc
// @Summary List all movies
// @Description Retrieves the full movie catalogue
// @Tags movies
// @Produce  json
// @Success 200 {array} dto.MovieResponse
// @Failure 500 {object} map[string]string "Failed to list movies"
// @Router /movies [get]
func (h *movieHandler) listMovies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	movies, err := h.movieService.ListMovies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list movies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovieResponse(movies))
}

// filterMovies godoc
// @Summary Filter movies by title keyword
// @Description Retrieves the movies whose title contains the given keyword
// @Tags movies
// @Produce  json
// @Param   q query string true "Title keyword"
// @Success 200 {array} dto.MovieResponse
// @Failure 500 {object} map[string]string "Failed to filter movies"
// @Router /movies/filter [get]
func (h *movieHandler) filterMovies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyword := c.Query("q")

	movies, err := h.movieService.FilterMoviesByTitle(c.Request.Context(), keyword)
	if err != nil {
		logger.Error("Failed to filter movies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter movies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovieResponse(movies))
}

// updateMovie godoc
// @Summary Update a movie
// @Description Fully replaces the stored fields of a movie
// @Tags movies
// @Accept  json
// @Produce  json
// @Param   movieID path string true "Movie ID"
// @Param   movie body dto.UpdateMovieRequest true "Movie details"
// @Success 200 {object} dto.MovieResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Movie not found"
// @Failure 500 {object} map[string]string "Failed to update movie"
// @Router /movies/{movieID} [put]
func (h *movieHandler) updateMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movieID := c.Param("movieID")

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMovie", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movie, err := h.movieService.UpdateMovie(c.Request.Context(), movieID, req, middleware.GetActorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Movie not found for update", slog.String("movie_id", movieID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		} else {
			logger.Error("Failed to update movie in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movie"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

// deleteMovie godoc
// @Summary Delete a movie
// @Description Removes a movie from the catalogue and returns the removed record
// @Tags movies
// @Produce  json
// @Param   movieID path string true "Movie ID"
// @Success 200 {object} dto.MovieResponse
// @Failure 404 {object} map[string]string "Movie not found"
// @Failure 500 {object} map[string]string "Failed to delete movie"
// @Router /movies/{movieID} [delete]
func (h *movieHandler) deleteMovie(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movieID := c.Param("movieID")

	movie, err := h.movieService.DeleteMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Movie not found for delete", slog.String("movie_id", movieID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		} else {
			logger.Error("Failed to delete movie in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movie"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}
