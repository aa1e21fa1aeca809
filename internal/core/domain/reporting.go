package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovieRentals pairs a movie with the number of times it appears in the
// rental ledger. Produced by the ranking operations.
type MovieRentals struct {
	Movie     Movie `json:"movie"`
	RentCount int   `json:"rentCount"`
}

// ClientRentals pairs a client with the number of movies they have rented.
type ClientRentals struct {
	Client    Client `json:"client"`
	RentCount int    `json:"rentCount"`
}

// ClientRentReport aggregates every ledger entry for one client: the rented
// movies (one per matching rental, in ledger order, duplicates included),
// the rent dates in the same order, the summed charges and the match count.
type ClientRentReport struct {
	Client       Client          `json:"client"`
	Movies       []Movie         `json:"movies"`
	RentDates    []time.Time     `json:"rentDates"`
	TotalCharges decimal.Decimal `json:"totalCharges"`
	RentCount    int             `json:"rentCount"`
}

// MovieRentReport is the movie-flavored counterpart of ClientRentReport.
type MovieRentReport struct {
	Movie        Movie           `json:"movie"`
	Clients      []Client        `json:"clients"`
	RentDates    []time.Time     `json:"rentDates"`
	TotalCharges decimal.Decimal `json:"totalCharges"`
	RentCount    int             `json:"rentCount"`
}
