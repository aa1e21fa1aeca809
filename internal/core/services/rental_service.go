package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
)

// rentalService implements the RentalSvcFacade interface. It owns the rental
// lifecycle and the ledger CRUD; entity resolution goes through the injected
// reader services so the ledger never carries an identifier the lookups
// cannot resolve at rent time.
type rentalService struct {
	BaseService
	rentalRepo portsrepo.RentalRepositoryFacade
	movieSvc   portssvc.MovieReaderSvc
	clientSvc  portssvc.ClientReaderSvc
}

// NewRentalService creates a new rental service.
func NewRentalService(
	rentalRepo portsrepo.RentalRepositoryFacade,
	movieSvc portssvc.MovieReaderSvc,
	clientSvc portssvc.ClientReaderSvc,
) portssvc.RentalSvcFacade {
	return &rentalService{
		rentalRepo: rentalRepo,
		movieSvc:   movieSvc,
		clientSvc:  clientSvc,
	}
}

// Ensure rentalService implements the RentalSvcFacade interface
var _ portssvc.RentalSvcFacade = (*rentalService)(nil)

// RentMovie builds and persists a new ledger entry. The charge is the rented
// movie's rental price and the due date is the rental date plus the fixed
// rental period. Nothing is inserted if either party fails to resolve.
func (s *rentalService) RentMovie(ctx context.Context, clientID, movieID string) (*domain.Rental, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id must not be empty", apperrors.ErrValidation)
	}
	if movieID == "" {
		return nil, fmt.Errorf("%w: movie id must not be empty", apperrors.ErrValidation)
	}

	client, err := s.clientSvc.GetClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve client for rental", slog.String("client_id", clientID))
		return nil, err
	}

	movie, err := s.movieSvc.GetMovieByID(ctx, movieID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve movie for rental", slog.String("movie_id", movieID))
		return nil, err
	}

	now := time.Now().UTC()
	rental := domain.Rental{
		ClientID:     client.ClientID,
		MovieID:      movie.MovieID,
		RentalCharge: movie.RentalPrice,
		RentalDate:   now,
		DueDate:      now.Add(domain.RentalPeriod),
	}

	rentalID, err := s.rentalRepo.SaveRental(ctx, rental)
	if err != nil {
		s.LogError(ctx, err, "Failed to save rental",
			slog.String("client_id", clientID),
			slog.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to save rental: %w", err)
	}
	rental.RentalID = rentalID

	s.LogInfo(ctx, "Movie rented",
		slog.String("rental_id", rental.RentalID),
		slog.String("client_id", clientID),
		slog.String("movie_id", movieID),
		slog.String("charge", rental.RentalCharge.String()))
	return &rental, nil
}

// GetRentalByID retrieves a single ledger entry.
func (s *rentalService) GetRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rental %s: %w", rentalID, err)
	}
	return rental, nil
}

// ListRentals returns the full ledger in insertion order.
func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	if rentals == nil {
		return []domain.Rental{}, nil
	}
	return rentals, nil
}

// UpdateRental fully replaces an existing ledger entry. The due date is
// recomputed from the rental date so the fixed rental period always holds.
func (s *rentalService) UpdateRental(ctx context.Context, rental domain.Rental) (*domain.Rental, error) {
	if rental.RentalID == "" {
		return nil, fmt.Errorf("%w: rental id must not be empty", apperrors.ErrValidation)
	}

	rental.DueDate = rental.RentalDate.Add(domain.RentalPeriod)

	if err := s.rentalRepo.UpdateRental(ctx, rental); err != nil {
		s.LogError(ctx, err, "Failed to update rental", slog.String("rental_id", rental.RentalID))
		return nil, fmt.Errorf("failed to update rental %s: %w", rental.RentalID, err)
	}

	s.LogInfo(ctx, "Rental updated", slog.String("rental_id", rental.RentalID))
	return &rental, nil
}

// DeleteRental removes a ledger entry and returns the removed record.
func (s *rentalService) DeleteRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.DeleteRental(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete rental %s: %w", rentalID, err)
	}

	s.LogInfo(ctx, "Rental deleted", slog.String("rental_id", rentalID))
	return rental, nil
}
