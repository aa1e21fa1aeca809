package dto

import (
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovieRentalsResponse represents one row of the movie leaderboard.
type MovieRentalsResponse struct {
	Movie     MovieResponse `json:"movie"`
	RentCount int           `json:"rentCount"`
}

// ClientRentalsResponse represents one row of the client leaderboard.
type ClientRentalsResponse struct {
	Client    ClientResponse `json:"client"`
	RentCount int            `json:"rentCount"`
}

// ClientRentReportResponse represents the rent report for one client.
type ClientRentReportResponse struct {
	Client       ClientResponse  `json:"client"`
	Movies       []MovieResponse `json:"movies"`
	RentDates    []time.Time     `json:"rentDates"`
	TotalCharges decimal.Decimal `json:"totalCharges"`
	RentCount    int             `json:"rentCount"`
}

// MovieRentReportResponse represents the rent report for one movie.
type MovieRentReportResponse struct {
	Movie        MovieResponse    `json:"movie"`
	Clients      []ClientResponse `json:"clients"`
	RentDates    []time.Time      `json:"rentDates"`
	TotalCharges decimal.Decimal  `json:"totalCharges"`
	RentCount    int              `json:"rentCount"`
}

// ToMovieRentalsResponse converts a ranked movie sequence to DTOs.
func ToMovieRentalsResponse(ranked []domain.MovieRentals) []MovieRentalsResponse {
	res := make([]MovieRentalsResponse, len(ranked))
	for i, entry := range ranked {
		res[i] = MovieRentalsResponse{
			Movie:     ToMovieResponse(&entry.Movie),
			RentCount: entry.RentCount,
		}
	}
	return res
}

// ToClientRentalsResponse converts a ranked client sequence to DTOs.
func ToClientRentalsResponse(ranked []domain.ClientRentals) []ClientRentalsResponse {
	res := make([]ClientRentalsResponse, len(ranked))
	for i, entry := range ranked {
		res[i] = ClientRentalsResponse{
			Client:    ToClientResponse(&entry.Client),
			RentCount: entry.RentCount,
		}
	}
	return res
}

// ToClientRentReportResponse converts a domain report to its DTO.
func ToClientRentReportResponse(report *domain.ClientRentReport) ClientRentReportResponse {
	return ClientRentReportResponse{
		Client:       ToClientResponse(&report.Client),
		Movies:       ToListMovieResponse(report.Movies),
		RentDates:    report.RentDates,
		TotalCharges: report.TotalCharges,
		RentCount:    report.RentCount,
	}
}

// ToMovieRentReportResponse converts a domain report to its DTO.
func ToMovieRentReportResponse(report *domain.MovieRentReport) MovieRentReportResponse {
	return MovieRentReportResponse{
		Movie:        ToMovieResponse(&report.Movie),
		Clients:      ToListClientResponse(report.Clients),
		RentDates:    report.RentDates,
		TotalCharges: report.TotalCharges,
		RentCount:    report.RentCount,
	}
}
