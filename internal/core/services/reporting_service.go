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
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface. It turns the
// flat rental ledger into frequency-ranked leaderboards and per-entity rent
// reports. Each operation works on one ledger snapshot taken at entry and
// never retains it across calls.
type reportingService struct {
	BaseService
	rentalRepo portsrepo.RentalReader
	movieSvc   portssvc.MovieReaderSvc
	clientSvc  portssvc.ClientReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	rentalRepo portsrepo.RentalReader,
	movieSvc portssvc.MovieReaderSvc,
	clientSvc portssvc.ClientReaderSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		rentalRepo: rentalRepo,
		movieSvc:   movieSvc,
		clientSvc:  clientSvc,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// rentFrequency is an insertion-ordered frequency mapping: ids holds each
// identifier in the order it was first observed while scanning the ledger,
// counts holds its number of occurrences. Only observed identifiers appear.
type rentFrequency struct {
	ids    []string
	counts map[string]int
}

// countRentalsBy builds the frequency mapping for one ledger scan, keyed by
// whatever identifier the key function extracts from a rental.
func countRentalsBy(rentals []domain.Rental, key func(domain.Rental) string) rentFrequency {
	freq := rentFrequency{counts: make(map[string]int, len(rentals))}
	for _, r := range rentals {
		id := key(r)
		if _, seen := freq.counts[id]; !seen {
			freq.ids = append(freq.ids, id)
		}
		freq.counts[id]++
	}
	return freq
}

// RankMoviesByRentals returns the movies appearing in the ledger ordered by
// descending rent count. Entries are placed by walking the frequency mapping
// in discovery order and inserting each entry before the first existing entry
// with a count less than or equal to its own, so among equal counts the movie
// discovered later in the ledger ranks earlier. A movie identifier the
// catalogue cannot resolve aborts the ranking.
func (s *reportingService) RankMoviesByRentals(ctx context.Context) ([]domain.MovieRentals, error) {
	rentals, err := s.rentalRepo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental ledger: %w", err)
	}

	freq := countRentalsBy(rentals, func(r domain.Rental) string { return r.MovieID })

	ranked := make([]domain.MovieRentals, 0, len(freq.ids))
	for _, movieID := range freq.ids {
		movie, err := s.movieSvc.GetMovieByID(ctx, movieID)
		if err != nil {
			s.LogError(ctx, err, "Ledger references unresolvable movie", slog.String("movie_id", movieID))
			return nil, fmt.Errorf("ranking movies: %w", err)
		}

		entry := domain.MovieRentals{Movie: *movie, RentCount: freq.counts[movieID]}
		pos := len(ranked)
		for i, existing := range ranked {
			if existing.RentCount <= entry.RentCount {
				pos = i
				break
			}
		}
		ranked = append(ranked, domain.MovieRentals{})
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = entry
	}

	s.LogInfo(ctx, "Movie ranking generated",
		slog.Int("ledger_size", len(rentals)),
		slog.Int("ranked_movies", len(ranked)))
	return ranked, nil
}

// RankClientsByRentals is the client-flavored counterpart of
// RankMoviesByRentals, under the same ordering contract.
func (s *reportingService) RankClientsByRentals(ctx context.Context) ([]domain.ClientRentals, error) {
	rentals, err := s.rentalRepo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental ledger: %w", err)
	}

	freq := countRentalsBy(rentals, func(r domain.Rental) string { return r.ClientID })

	ranked := make([]domain.ClientRentals, 0, len(freq.ids))
	for _, clientID := range freq.ids {
		client, err := s.clientSvc.GetClientByID(ctx, clientID)
		if err != nil {
			s.LogError(ctx, err, "Ledger references unresolvable client", slog.String("client_id", clientID))
			return nil, fmt.Errorf("ranking clients: %w", err)
		}

		entry := domain.ClientRentals{Client: *client, RentCount: freq.counts[clientID]}
		pos := len(ranked)
		for i, existing := range ranked {
			if existing.RentCount <= entry.RentCount {
				pos = i
				break
			}
		}
		ranked = append(ranked, domain.ClientRentals{})
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = entry
	}

	s.LogInfo(ctx, "Client ranking generated",
		slog.Int("ledger_size", len(rentals)),
		slog.Int("ranked_clients", len(ranked)))
	return ranked, nil
}

// ReportByClient aggregates every ledger entry of one client: the rented
// movies and rent dates in ledger order, the summed charges and the match
// count. A counterpart movie that fails to resolve aborts the report; a
// ledger with no matching entries yields an empty report.
func (s *reportingService) ReportByClient(ctx context.Context, clientID string) (*domain.ClientRentReport, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id must not be empty", apperrors.ErrValidation)
	}

	client, err := s.clientSvc.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("report target: %w", err)
	}

	rentals, err := s.rentalRepo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental ledger: %w", err)
	}

	report := &domain.ClientRentReport{
		Client:       *client,
		Movies:       []domain.Movie{},
		RentDates:    []time.Time{},
		TotalCharges: decimal.Zero,
	}

	for _, rental := range rentals {
		if rental.ClientID != clientID {
			continue
		}

		movie, err := s.movieSvc.GetMovieByID(ctx, rental.MovieID)
		if err != nil {
			s.LogError(ctx, err, "Report references unresolvable movie",
				slog.String("rental_id", rental.RentalID),
				slog.String("movie_id", rental.MovieID))
			return nil, fmt.Errorf("client report: %w", err)
		}

		report.Movies = append(report.Movies, *movie)
		report.RentDates = append(report.RentDates, rental.RentalDate)
		report.TotalCharges = report.TotalCharges.Add(rental.RentalCharge)
		report.RentCount++
	}

	s.LogInfo(ctx, "Client rent report generated",
		slog.String("client_id", clientID),
		slog.Int("rent_count", report.RentCount),
		slog.String("total_charges", report.TotalCharges.String()))
	return report, nil
}

// ReportByMovie aggregates every ledger entry of one movie, symmetrically to
// ReportByClient.
func (s *reportingService) ReportByMovie(ctx context.Context, movieID string) (*domain.MovieRentReport, error) {
	if movieID == "" {
		return nil, fmt.Errorf("%w: movie id must not be empty", apperrors.ErrValidation)
	}

	movie, err := s.movieSvc.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("report target: %w", err)
	}

	rentals, err := s.rentalRepo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental ledger: %w", err)
	}

	report := &domain.MovieRentReport{
		Movie:        *movie,
		Clients:      []domain.Client{},
		RentDates:    []time.Time{},
		TotalCharges: decimal.Zero,
	}

	for _, rental := range rentals {
		if rental.MovieID != movieID {
			continue
		}

		client, err := s.clientSvc.GetClientByID(ctx, rental.ClientID)
		if err != nil {
			s.LogError(ctx, err, "Report references unresolvable client",
				slog.String("rental_id", rental.RentalID),
				slog.String("client_id", rental.ClientID))
			return nil, fmt.Errorf("movie report: %w", err)
		}

		report.Clients = append(report.Clients, *client)
		report.RentDates = append(report.RentDates, rental.RentalDate)
		report.TotalCharges = report.TotalCharges.Add(rental.RentalCharge)
		report.RentCount++
	}

	s.LogInfo(ctx, "Movie rent report generated",
		slog.String("movie_id", movieID),
		slog.Int("rent_count", report.RentCount),
		slog.String("total_charges", report.TotalCharges.String()))
	return report, nil
}

// ReportClientSubscriptions maps each registered client's last name to their
// newsletter subscription flag. The map is keyed by last name, so clients
// sharing one collapse into a single entry.
func (s *reportingService) ReportClientSubscriptions(ctx context.Context) (map[string]bool, error) {
	clients, err := s.clientSvc.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load client registry: %w", err)
	}

	report := make(map[string]bool, len(clients))
	for _, client := range clients {
		report[client.LastName] = client.Subscribed
	}

	s.LogInfo(ctx, "Client subscription report generated", slog.Int("entries", len(report)))
	return report, nil
}
