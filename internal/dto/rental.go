package dto

import (
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RentMovieRequest defines the data needed to rent a movie.
type RentMovieRequest struct {
	ClientID string `json:"clientID" binding:"required"`
	MovieID  string `json:"movieID" binding:"required"`
}

// UpdateRentalRequest defines the data for a full rental update. The due date
// is not accepted from the caller; it is derived from the rental date.
type UpdateRentalRequest struct {
	ClientID     string          `json:"clientID" binding:"required"`
	MovieID      string          `json:"movieID" binding:"required"`
	RentalCharge decimal.Decimal `json:"rentalCharge" binding:"required"`
	RentalDate   time.Time       `json:"rentalDate" binding:"required"`
}

// RentalResponse defines the data returned for a ledger entry.
type RentalResponse struct {
	RentalID     string          `json:"rentalID"`
	ClientID     string          `json:"clientID"`
	MovieID      string          `json:"movieID"`
	RentalCharge decimal.Decimal `json:"rentalCharge"`
	RentalDate   time.Time       `json:"rentalDate"`
	DueDate      time.Time       `json:"dueDate"`
}

// ToRentalResponse converts a domain.Rental to a RentalResponse DTO.
func ToRentalResponse(r *domain.Rental) RentalResponse {
	return RentalResponse{
		RentalID:     r.RentalID,
		ClientID:     r.ClientID,
		MovieID:      r.MovieID,
		RentalCharge: r.RentalCharge,
		RentalDate:   r.RentalDate,
		DueDate:      r.DueDate,
	}
}

// ToListRentalResponse converts a slice of domain.Rental to RentalResponse DTOs.
func ToListRentalResponse(rentals []domain.Rental) []RentalResponse {
	res := make([]RentalResponse, len(rentals))
	for i, r := range rentals {
		res[i] = ToRentalResponse(&r)
	}
	return res
}
