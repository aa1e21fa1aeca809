package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/google/uuid"
)

// movieService implements the MovieSvcFacade interface.
type movieService struct {
	BaseService
	movieRepo portsrepo.MovieRepositoryFacade
}

// NewMovieService creates a new movie service.
func NewMovieService(movieRepo portsrepo.MovieRepositoryFacade) portssvc.MovieSvcFacade {
	return &movieService{movieRepo: movieRepo}
}

// Ensure movieService implements the MovieSvcFacade interface
var _ portssvc.MovieSvcFacade = (*movieService)(nil)

// CreateMovie adds a new title to the catalogue.
func (s *movieService) CreateMovie(ctx context.Context, req dto.CreateMovieRequest, creatorID string) (*domain.Movie, error) {
	now := time.Now().UTC()

	movie := domain.Movie{
		MovieID:     uuid.NewString(),
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       domain.Genre(req.Genre),
		Rating:      domain.Rating(req.Rating),
		RentalPrice: req.RentalPrice,
		Available:   req.Available,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.movieRepo.SaveMovie(ctx, movie); err != nil {
		s.LogError(ctx, err, "Failed to save movie", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.LogInfo(ctx, "Movie created", slog.String("movie_id", movie.MovieID), slog.String("title", movie.Title))
	return &movie, nil
}

// GetMovieByID resolves a movie identifier.
func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*domain.Movie, error) {
	movie, err := s.movieRepo.FindMovieByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %s: %w", movieID, err)
	}
	return movie, nil
}

// ListMovies returns the full catalogue.
func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	if movies == nil {
		return []domain.Movie{}, nil
	}
	return movies, nil
}

// FilterMoviesByTitle returns the movies whose title contains the keyword.
func (s *movieService) FilterMoviesByTitle(ctx context.Context, keyword string) ([]domain.Movie, error) {
	movies, err := s.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to filter movies: %w", err)
	}

	filtered := make([]domain.Movie, 0)
	for _, m := range movies {
		if strings.Contains(m.Title, keyword) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// UpdateMovie fully replaces the stored fields of a movie.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req dto.UpdateMovieRequest, updaterID string) (*domain.Movie, error) {
	movie, err := s.movieRepo.FindMovieByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie %s for update: %w", movieID, err)
	}

	movie.Title = req.Title
	movie.ReleaseYear = req.ReleaseYear
	movie.Genre = domain.Genre(req.Genre)
	movie.Rating = domain.Rating(req.Rating)
	movie.RentalPrice = req.RentalPrice
	movie.Available = req.Available
	movie.LastUpdatedAt = time.Now().UTC()
	movie.LastUpdatedBy = updaterID

	if err := s.movieRepo.UpdateMovie(ctx, *movie); err != nil {
		s.LogError(ctx, err, "Failed to update movie", slog.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to update movie %s: %w", movieID, err)
	}

	s.LogInfo(ctx, "Movie updated", slog.String("movie_id", movieID))
	return movie, nil
}

// DeleteMovie removes a movie and returns the removed record.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	movie, err := s.movieRepo.DeleteMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete movie %s: %w", movieID, err)
	}

	s.LogInfo(ctx, "Movie deleted", slog.String("movie_id", movieID), slog.String("title", movie.Title))
	return movie, nil
}
