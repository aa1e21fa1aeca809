package pgsql

import (
	"errors"

	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MovieRepo:  newPgxMovieRepository(dbPool),
		ClientRepo: newPgxClientRepository(dbPool),
		RentalRepo: newPgxRentalRepository(dbPool),
	}
}

// uniqueViolationCode is the SQLSTATE PostgreSQL reports for unique
// constraint violations.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
