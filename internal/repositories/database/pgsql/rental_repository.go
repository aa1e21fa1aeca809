package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxRentalRepository struct {
	pool *pgxpool.Pool
}

// newPgxRentalRepository creates a new repository for the rental ledger.
func newPgxRentalRepository(pool *pgxpool.Pool) portsrepo.RentalRepositoryFacade {
	return &pgxRentalRepository{pool: pool}
}

const rentalColumns = `rental_id, client_id, movie_id, rental_charge, rental_date, due_date`

func scanRental(row pgx.Row) (*domain.Rental, error) {
	var r domain.Rental
	err := row.Scan(
		&r.RentalID,
		&r.ClientID,
		&r.MovieID,
		&r.RentalCharge,
		&r.RentalDate,
		&r.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveRental inserts a new ledger entry, assigning its identifier. The seq
// column preserves insertion order for ListRentals.
func (r *pgxRentalRepository) SaveRental(ctx context.Context, rental domain.Rental) (string, error) {
	rentalID := uuid.NewString()

	query := `
		INSERT INTO rentals (` + rentalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		rentalID,
		rental.ClientID,
		rental.MovieID,
		rental.RentalCharge,
		rental.RentalDate,
		rental.DueDate,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save rental: %w", err)
	}
	return rentalID, nil
}

// FindRentalByID retrieves a ledger entry by its identifier.
func (r *pgxRentalRepository) FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE rental_id = $1;`

	rental, err := scanRental(r.pool.QueryRow(ctx, query, rentalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rental by id %s: %w", rentalID, err)
	}
	return rental, nil
}

// ListRentals retrieves the full ledger in insertion order.
func (r *pgxRentalRepository) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY seq;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := make([]domain.Rental, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental row: %w", err)
		}
		rentals = append(rentals, *rental)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating rental rows: %w", err)
	}
	return rentals, nil
}

// UpdateRental fully replaces the ledger entry carrying the same identifier.
func (r *pgxRentalRepository) UpdateRental(ctx context.Context, rental domain.Rental) error {
	query := `
		UPDATE rentals
		SET client_id = $2, movie_id = $3, rental_charge = $4, rental_date = $5, due_date = $6
		WHERE rental_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		rental.RentalID,
		rental.ClientID,
		rental.MovieID,
		rental.RentalCharge,
		rental.RentalDate,
		rental.DueDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update rental %s: %w", rental.RentalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRental removes a ledger entry and returns the removed record.
func (r *pgxRentalRepository) DeleteRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	query := `DELETE FROM rentals WHERE rental_id = $1 RETURNING ` + rentalColumns + `;`

	rental, err := scanRental(r.pool.QueryRow(ctx, query, rentalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete rental %s: %w", rentalID, err)
	}
	return rental, nil
}
