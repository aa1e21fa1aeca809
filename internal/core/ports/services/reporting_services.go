package services

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// ReportingSvcFacade exposes the rental analytics operations: the
// frequency-ranked leaderboards and the per-entity rent reports.
type ReportingSvcFacade interface {
	// RankMoviesByRentals returns the movies appearing in the ledger ordered
	// by descending rent count. Among equal counts, the movie whose first
	// rental was observed later in the ledger ranks earlier.
	RankMoviesByRentals(ctx context.Context) ([]domain.MovieRentals, error)

	// RankClientsByRentals is the client-flavored counterpart of
	// RankMoviesByRentals.
	RankClientsByRentals(ctx context.Context) ([]domain.ClientRentals, error)

	// ReportByClient aggregates every ledger entry of one client. A ledger
	// with no matching entries yields an empty report, not an error.
	ReportByClient(ctx context.Context, clientID string) (*domain.ClientRentReport, error)

	// ReportByMovie aggregates every ledger entry of one movie.
	ReportByMovie(ctx context.Context, movieID string) (*domain.MovieRentReport, error)

	// ReportClientSubscriptions maps each registered client's last name to
	// their newsletter subscription flag. Clients sharing a last name
	// collapse into one entry, the later-listed client winning.
	ReportClientSubscriptions(ctx context.Context) (map[string]bool, error)
}
