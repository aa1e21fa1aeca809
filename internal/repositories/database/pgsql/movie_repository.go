package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxMovieRepository struct {
	pool *pgxpool.Pool
}

// newPgxMovieRepository creates a new repository for catalogue data.
func newPgxMovieRepository(pool *pgxpool.Pool) portsrepo.MovieRepositoryFacade {
	return &pgxMovieRepository{pool: pool}
}

const movieColumns = `movie_id, title, release_year, genre, rating, rental_price, available, created_at, created_by, last_updated_at, last_updated_by`

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var m domain.Movie
	err := row.Scan(
		&m.MovieID,
		&m.Title,
		&m.ReleaseYear,
		&m.Genre,
		&m.Rating,
		&m.RentalPrice,
		&m.Available,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMovie inserts a new movie.
func (r *pgxMovieRepository) SaveMovie(ctx context.Context, movie domain.Movie) error {
	query := `
		INSERT INTO movies (` + movieColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		movie.MovieID,
		movie.Title,
		movie.ReleaseYear,
		movie.Genre,
		movie.Rating,
		movie.RentalPrice,
		movie.Available,
		movie.CreatedAt,
		movie.CreatedBy,
		movie.LastUpdatedAt,
		movie.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save movie %s: %w", movie.MovieID, err)
	}
	return nil
}

// FindMovieByID retrieves a movie by its identifier.
func (r *pgxMovieRepository) FindMovieByID(ctx context.Context, movieID string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE movie_id = $1;`

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, movieID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie by id %s: %w", movieID, err)
	}
	return movie, nil
}

// ListMovies retrieves the full catalogue.
func (r *pgxMovieRepository) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at, movie_id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating movie rows: %w", err)
	}
	return movies, nil
}

// UpdateMovie replaces the stored movie carrying the same identifier.
func (r *pgxMovieRepository) UpdateMovie(ctx context.Context, movie domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, release_year = $3, genre = $4, rating = $5, rental_price = $6,
			available = $7, last_updated_at = $8, last_updated_by = $9
		WHERE movie_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		movie.MovieID,
		movie.Title,
		movie.ReleaseYear,
		movie.Genre,
		movie.Rating,
		movie.RentalPrice,
		movie.Available,
		movie.LastUpdatedAt,
		movie.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update movie %s: %w", movie.MovieID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovie removes a movie and returns the removed record.
func (r *pgxMovieRepository) DeleteMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	query := `DELETE FROM movies WHERE movie_id = $1 RETURNING ` + movieColumns + `;`

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, movieID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete movie %s: %w", movieID, err)
	}
	return movie, nil
}
