package repositories

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// RentalReader defines read operations over the rental ledger.
type RentalReader interface {
	// FindRentalByID retrieves a specific rental by its unique identifier.
	// It returns apperrors.ErrNotFound if no rental carries the identifier.
	FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error)

	// ListRentals retrieves the full ledger in insertion order. Each call
	// returns a fresh snapshot owned by the caller.
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}

// RentalWriter defines write operations over the rental ledger.
type RentalWriter interface {
	// SaveRental inserts a new ledger entry, assigning its identifier.
	// The assigned identifier is returned.
	SaveRental(ctx context.Context, rental domain.Rental) (string, error)

	// UpdateRental fully replaces the ledger entry carrying the same
	// identifier. It returns apperrors.ErrNotFound if the entry is absent.
	UpdateRental(ctx context.Context, rental domain.Rental) error

	// DeleteRental removes a ledger entry and returns the removed record.
	DeleteRental(ctx context.Context, rentalID string) (*domain.Rental, error)
}

// RentalRepositoryFacade combines all rental repository interfaces.
type RentalRepositoryFacade interface {
	RentalReader
	RentalWriter
}
