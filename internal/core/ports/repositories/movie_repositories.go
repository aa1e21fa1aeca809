package repositories

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// MovieReader defines read operations for catalogue data.
type MovieReader interface {
	// FindMovieByID retrieves a specific movie by its unique identifier.
	// It returns apperrors.ErrNotFound if no movie carries the identifier.
	FindMovieByID(ctx context.Context, movieID string) (*domain.Movie, error)

	// ListMovies retrieves all movies in the catalogue.
	ListMovies(ctx context.Context) ([]domain.Movie, error)
}

// MovieWriter defines write operations for catalogue data.
type MovieWriter interface {
	// SaveMovie persists a new movie.
	SaveMovie(ctx context.Context, movie domain.Movie) error

	// UpdateMovie replaces the stored movie carrying the same identifier.
	UpdateMovie(ctx context.Context, movie domain.Movie) error

	// DeleteMovie removes a movie and returns the removed record.
	DeleteMovie(ctx context.Context, movieID string) (*domain.Movie, error)
}

// MovieRepositoryFacade combines all movie repository interfaces.
type MovieRepositoryFacade interface {
	MovieReader
	MovieWriter
}
