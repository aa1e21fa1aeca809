package services

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// RentalSvcFacade exposes the rental ledger operations.
type RentalSvcFacade interface {
	// RentMovie builds and persists a new rental for the given client and
	// movie. The charge is the movie's rental price and the due date is the
	// rental date plus domain.RentalPeriod. It returns an error wrapping
	// apperrors.ErrValidation on an empty identifier and apperrors.ErrNotFound
	// if either party does not resolve; nothing is inserted on failure.
	RentMovie(ctx context.Context, clientID, movieID string) (*domain.Rental, error)

	// GetRentalByID retrieves a single ledger entry.
	GetRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error)

	// ListRentals returns the full ledger in insertion order.
	ListRentals(ctx context.Context) ([]domain.Rental, error)

	// UpdateRental fully replaces an existing ledger entry. The due date is
	// recomputed from the rental date so the fixed rental period holds.
	UpdateRental(ctx context.Context, rental domain.Rental) (*domain.Rental, error)

	// DeleteRental removes a ledger entry and returns the removed record.
	DeleteRental(ctx context.Context, rentalID string) (*domain.Rental, error)
}
