package services

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
)

// MovieReaderSvc defines the read-side capabilities of the movie service.
// The rental and reporting services consume this narrow interface to resolve
// movie identifiers mid-aggregation.
type MovieReaderSvc interface {
	// GetMovieByID resolves a movie identifier. It returns an error wrapping
	// apperrors.ErrNotFound if the identifier is unknown.
	GetMovieByID(ctx context.Context, movieID string) (*domain.Movie, error)

	// ListMovies returns the full catalogue.
	ListMovies(ctx context.Context) ([]domain.Movie, error)

	// FilterMoviesByTitle returns the movies whose title contains the keyword.
	FilterMoviesByTitle(ctx context.Context, keyword string) ([]domain.Movie, error)
}

// MovieWriterSvc defines the write-side capabilities of the movie service.
type MovieWriterSvc interface {
	CreateMovie(ctx context.Context, req dto.CreateMovieRequest, creatorID string) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, movieID string, req dto.UpdateMovieRequest, updaterID string) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, movieID string) (*domain.Movie, error)
}

// MovieSvcFacade combines all movie service interfaces.
type MovieSvcFacade interface {
	MovieReaderSvc
	MovieWriterSvc
}
